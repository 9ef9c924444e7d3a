package store

import (
	"sync"
	"time"

	"github.com/Paths06/TalentNetwork/internal/models"
)

// Workspace is the session-scoped container: one ProfileStore plus the latest
// newsletter extraction result. Workspaces are never shared across sessions.
type Workspace struct {
	ID         string
	Profiles   *ProfileStore
	Extraction *models.ExtractionResult
	CreatedAt  time.Time
}

// WorkspaceRegistry hands out per-session workspaces. The registry map is the
// only state touched from more than one goroutine (request handlers and the
// extraction worker), so it carries the lock; stores themselves do not.
type WorkspaceRegistry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewWorkspaceRegistry creates an empty registry
func NewWorkspaceRegistry() *WorkspaceRegistry {
	return &WorkspaceRegistry{
		workspaces: make(map[string]*Workspace),
	}
}

// GetOrCreate returns the workspace for a session ID, creating it on first use
func (r *WorkspaceRegistry) GetOrCreate(id string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[id]
	if !ok {
		ws = &Workspace{
			ID:        id,
			Profiles:  NewProfileStore(),
			CreatedAt: time.Now(),
		}
		r.workspaces[id] = ws
	}
	return ws
}

// Profiles returns the profile store for a session ID
func (r *WorkspaceRegistry) Profiles(id string) *ProfileStore {
	return r.GetOrCreate(id).Profiles
}

// SetExtraction swaps in a completed extraction result for a workspace
func (r *WorkspaceRegistry) SetExtraction(id string, result *models.ExtractionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[id]
	if !ok {
		ws = &Workspace{
			ID:        id,
			Profiles:  NewProfileStore(),
			CreatedAt: time.Now(),
		}
		r.workspaces[id] = ws
	}
	ws.Extraction = result
}

// Extraction returns the latest extraction result for a workspace, nil if none
func (r *WorkspaceRegistry) Extraction(id string) *models.ExtractionResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[id]; ok {
		return ws.Extraction
	}
	return nil
}

// ClearExtraction drops a workspace's extraction state
func (r *WorkspaceRegistry) ClearExtraction(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.workspaces[id]; ok {
		ws.Extraction = nil
	}
}
