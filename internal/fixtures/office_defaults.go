package fixtures

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexus-os/office-backend/internal/domain/announcement"
	"github.com/nexus-os/office-backend/internal/domain/document"
	"github.com/nexus-os/office-backend/internal/domain/payroll"
	"github.com/nexus-os/office-backend/internal/domain/task"
	"github.com/nexus-os/office-backend/internal/domain/user"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// DefaultPassword is the first-run password of every default user
const DefaultPassword = "password"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash() string {
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
		if err != nil {
			panic("hash default password: " + err.Error())
		}
		defaultHash = string(h)
	})
	return defaultHash
}

// ==========================================
// USERS
// ==========================================

// DefaultUsers returns the first-run directory. Users added later are kept
// when this list grows: the users repository merges by id.
func DefaultUsers() []user.User {
	hash := defaultPasswordHash()
	return []user.User{
		{ID: "u1", Name: "Admin User", Email: "admin@company.com", Role: user.RoleAdmin, PasswordHash: hash, JobTitle: strPtr("Director of Operations")},
		{ID: "u2", Name: "John Doe", Email: "john@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("Software Engineer"), Department: strPtr("Engineering")},
		{ID: "u3", Name: "Jane Smith", Email: "jane@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("Product Designer"), Department: strPtr("Design")},
		{ID: "u4", Name: "Mike Johnson", Email: "mike@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("Sales Executive"), Department: strPtr("Sales")},
		{ID: "u5", Name: "Sarah Williams", Email: "sarah@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("HR Specialist"), Department: strPtr("Human Resources")},
		{ID: "u6", Name: "David Chen", Email: "david@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("Frontend Developer"), Department: strPtr("Engineering")},
		{ID: "u7", Name: "Emily Davis", Email: "emily@company.com", Role: user.RoleEmployee, PasswordHash: hash, JobTitle: strPtr("Marketing Manager"), Department: strPtr("Marketing")},
	}
}

// ==========================================
// ANNOUNCEMENTS
// ==========================================

// DefaultAnnouncements stamps the welcome post with now
func DefaultAnnouncements(now time.Time) []announcement.Announcement {
	return []announcement.Announcement{
		{
			ID:        "a1",
			Title:     "Welcome to Nexus OS 2.0",
			Content:   "We have upgraded the system. Check out the new Task Manager and Directory features!",
			AuthorID:  "u1",
			CreatedAt: now,
		},
	}
}

// ==========================================
// DOCUMENTS
// ==========================================

func DefaultDocuments() []document.Document {
	return []document.Document{
		{ID: "d1", Title: "Employment Contract", Type: document.TypePDF, Date: "2024-01-15", Category: document.CategoryContract},
		{ID: "d2", Title: "Company Handbook 2024", Type: document.TypePDF, Date: "2024-01-01", Category: document.CategoryPolicy},
		{ID: "d3", Title: "Tax Form W-2", Type: document.TypePDF, Date: "2024-02-20", Category: document.CategoryTax},
	}
}

// ==========================================
// TASKS
// ==========================================

func DefaultTasks() []task.Task {
	return []task.Task{
		{ID: "t1", UserID: "u2", Title: "Review PR #420", Status: task.StatusTodo, Priority: task.PriorityHigh},
		{ID: "t2", UserID: "u2", Title: "Update documentation", Status: task.StatusInProgress, Priority: task.PriorityMedium},
		{ID: "t3", UserID: "u2", Title: "Team Sync", Status: task.StatusDone, Priority: task.PriorityLow},
	}
}

// ==========================================
// PAYROLL
// ==========================================

func DefaultPayroll() []payroll.Record {
	return []payroll.Record{
		{ID: "p1", UserID: "u2", Month: "October 2024", Amount: decimal.NewFromInt(5400), Status: payroll.StatusPaid, DatePaid: strPtr("2024-10-28")},
		{ID: "p2", UserID: "u2", Month: "November 2024", Amount: decimal.NewFromInt(5400), Status: payroll.StatusPaid, DatePaid: strPtr("2024-11-28")},
		{ID: "p3", UserID: "u2", Month: "December 2024", Amount: decimal.NewFromInt(5600), Status: payroll.StatusProcessing},
		{ID: "p4", UserID: "u3", Month: "December 2024", Amount: decimal.NewFromInt(6200), Status: payroll.StatusProcessing},
		{ID: "p5", UserID: "u4", Month: "December 2024", Amount: decimal.NewFromInt(4800), Status: payroll.StatusProcessing},
		{ID: "p6", UserID: "u5", Month: "December 2024", Amount: decimal.NewFromInt(5100), Status: payroll.StatusProcessing},
	}
}
