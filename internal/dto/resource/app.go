package resource

import (
	"time"
)

type AppResource struct {
	App     string    `json:"app"`
	Env     string    `json:"env"`
	Version string    `json:"version"`
	Time    time.Time `json:"time"`
}

type DashboardResource struct {
	PendingCount int64 `json:"pending_count"`
}

type SessionUserResource struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
