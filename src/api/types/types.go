package types

import "time"

// Tools a tenant has registered. Referenced by agents through the
// agent_tools join table; never owned by more than one tenant.
type Tool struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	TenantID    string  `gorm:"size:64;index;not null" json:"-"`
	Name        string  `gorm:"size:255;index;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Agents      []Agent `gorm:"many2many:agent_tools" json:"-"`
}

// Agents belong to exactly one tenant. The tool set is a subset of
// that tenant's tools, enforced at every create/update.
type Agent struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	TenantID    string `gorm:"size:64;index;not null" json:"-"`
	Name        string `gorm:"size:255;index;not null" json:"name"`
	Role        string `gorm:"size:255" json:"role"`
	Description string `gorm:"type:text" json:"description"`
	Tools       []Tool `gorm:"many2many:agent_tools" json:"tools"`
}

// Execution history, append-only. AgentID is a plain reference: the
// agent may be deleted later and the record stays.
type AgentExecution struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	TenantID  string    `gorm:"size:64;index;not null" json:"-"`
	AgentID   uint64    `gorm:"index;not null" json:"agent_id"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	Model     string    `gorm:"size:64;not null" json:"model"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `json:"timestamp"`
}
