package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/announcement"
	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/pkg/validator"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
	notificationService "github.com/nexus-os/office-backend/internal/service/notification"
)

type recordingAssistant struct {
	topic, tone string
}

func (r *recordingAssistant) GenerateAnnouncement(_ context.Context, topic, tone string) string {
	r.topic, r.tone = topic, tone
	return "draft about " + topic
}

type fixture struct {
	svc           announcement.AnnouncementService
	assistant     *recordingAssistant
	clock         *clock.Fixed
	notifications notification.Repository
}

func newFixture() fixture {
	s := store.New(kv.NewMemory())
	c := clock.NewFixed(time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC))
	notifRepo := kvstore.NewNotificationRepository(s)
	notif := notificationService.NewNotificationService(s, notifRepo, kvstore.NewUserRepository(s), nil, c, latency.Simulator{})
	assistant := &recordingAssistant{}
	return fixture{
		svc:           NewAnnouncementService(s, kvstore.NewAnnouncementRepository(s, c), notif, assistant, c, latency.Simulator{}),
		assistant:     assistant,
		clock:         c,
		notifications: notifRepo,
	}
}

func TestCreate_PrependsAndNotifiesEveryone(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.clock.Set(f.clock.Now().Add(time.Hour))

	created, err := f.svc.Create(ctx, announcement.CreateAnnouncementRequest{
		AuthorID: "u1",
		Title:    "Office closed Friday",
		Content:  "Enjoy the long weekend.",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.AuthorID)

	all, err := f.svc.List(ctx, announcement.ListAnnouncementsFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "a1", all[1].ID)

	notes, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "New Announcement: Office closed Friday", notes[0].Message)
	assert.Equal(t, notification.TargetAll, notes[0].TargetRole)
	assert.Equal(t, notification.TypeInfo, notes[0].Type)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), announcement.CreateAnnouncementRequest{AuthorID: "u1", Title: "  ", Content: "x"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "title", verrs[0].Field)
}

func TestList_Limit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	for _, title := range []string{"one", "two", "three"} {
		f.clock.Set(f.clock.Now().Add(time.Minute))
		_, err := f.svc.Create(ctx, announcement.CreateAnnouncementRequest{AuthorID: "u1", Title: title, Content: "body"})
		require.NoError(t, err)
	}

	latest, err := f.svc.List(ctx, announcement.ListAnnouncementsFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "three", latest[0].Title)
	assert.Equal(t, "two", latest[1].Title)
}

func TestDraft_DefaultsTone(t *testing.T) {
	f := newFixture()

	resp := f.svc.Draft(context.Background(), announcement.DraftRequest{Topic: "holiday party"})
	assert.Equal(t, "draft about holiday party", resp.Content)
	assert.Equal(t, "professional", f.assistant.tone)

	f.svc.Draft(context.Background(), announcement.DraftRequest{Topic: "holiday party", Tone: "festive"})
	assert.Equal(t, "festive", f.assistant.tone)
}
