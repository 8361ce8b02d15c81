package internalscope

import (
	"context"
	"maps"
	"sync"

	"github.com/spf13/cobra"
	spf13viper "github.com/spf13/viper"
)

// getdirContextKey is used to store scope in command context
type getdirContextKey struct{}

// Scope holds per-command state for the CLI
type Scope struct {
	v         *spf13viper.Viper
	boundEnvs map[string]bool
	mu        sync.RWMutex
}

// Get retrieves or creates a scope for the given command
func Get(c *cobra.Command) *Scope {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if s, ok := ctx.Value(getdirContextKey{}).(*Scope); ok {
		return s
	}

	// Every command gets its own viper so flags of sibling commands never collide
	s := &Scope{
		v:         spf13viper.New(),
		boundEnvs: make(map[string]bool),
	}

	newCtx := context.WithValue(ctx, getdirContextKey{}, s)
	c.SetContext(newCtx)

	return s
}

// Viper returns the viper instance for the command
func (s *Scope) Viper() *spf13viper.Viper {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.v
}

// IsEnvBound checks if a flag has already been bound to its environment variables for this command
func (s *Scope) IsEnvBound(flagName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.boundEnvs[flagName]
}

// SetBound marks a flag as bound for this command
func (s *Scope) SetBound(flagName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundEnvs[flagName] = true
}

// GetBoundEnvs is for testing purposes only
func (s *Scope) GetBoundEnvs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]bool, len(s.boundEnvs))
	maps.Copy(result, s.boundEnvs)

	return result
}
