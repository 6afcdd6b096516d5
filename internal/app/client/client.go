package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"cuaderno/internal/app/client/config"
	"cuaderno/internal/domain/cadaverplan"
	"cuaderno/internal/domain/cleaning"
	"cuaderno/internal/domain/farm"
	"cuaderno/internal/domain/farmdetail"
	"cuaderno/internal/domain/maintenanceplan"
	"cuaderno/internal/domain/pestlog"
	"cuaderno/internal/domain/staff"
	"cuaderno/internal/domain/training"
	"cuaderno/internal/domain/wasteplan"
	"cuaderno/internal/pocket"
	"cuaderno/internal/session"
)

// ErrSessionExpired is returned when an operation needs credentials and
// the local session window has elapsed or no login happened yet.
var ErrSessionExpired = errors.New("session expired, run: cuaderno auth login")

// App wires the record-store client, the session and the per-collection
// services behind one facade the commands talk to.
type App struct {
	config  *config.Config
	log     *slog.Logger
	pocket  *pocket.Client
	session *session.Manager
	store   session.Store
	state   *AppState
	mu      sync.RWMutex

	pestLogs         *pestlog.Service
	cleaning         *cleaning.Service
	staff            *staff.Service
	wastePlans       *wasteplan.Service
	cadaverPlans     *cadaverplan.Service
	maintenancePlans *maintenanceplan.Service
	farmDetails      *farmdetail.Service
	training         *training.Service
	farms            *farm.Service
}

// AppState is the small piece of client state that is not part of the
// session: which farm the commands operate on by default.
type AppState struct {
	CurrentFarm string `json:"current_farm"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("failed to load app state", "error", err)
		state = &AppState{}
	}

	var store session.Store
	sqliteStore, err := session.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		log.Warn("failed to open local database, falling back to memory", "error", err)
		store = session.NewMemoryStore()
	} else {
		store = sqliteStore
	}

	pocketClient := pocket.NewClient(cfg.BaseURL, log)
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	manager := session.NewManager(store, session.SystemClock(), ttl, log)

	app := &App{
		config:  cfg,
		log:     log,
		pocket:  pocketClient,
		session: manager,
		store:   store,
		state:   state,

		pestLogs:         pestlog.NewService(pocketClient, log),
		cleaning:         cleaning.NewService(pocketClient, log),
		staff:            staff.NewService(pocketClient, log),
		wastePlans:       wasteplan.NewService(pocketClient, log),
		cadaverPlans:     cadaverplan.NewService(pocketClient, log),
		maintenancePlans: maintenanceplan.NewService(pocketClient, log),
		farmDetails:      farmdetail.NewService(pocketClient, log),
		training:         training.NewService(pocketClient, log),
		farms:            farm.NewService(pocketClient, log),
	}

	if manager.IsTokenValid() {
		log.Debug("session restored", "user", manager.UserID())
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	statePath := filepath.Join(cfg.ConfigDir, "state.json")

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	statePath := filepath.Join(a.config.ConfigDir, "state.json")
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(statePath, data, 0600)
}

// CheckConnection verifies the record store is reachable.
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.pocket.HealthCheck(ctx)
}

// Login authenticates against the record store and starts a new local
// session window.
func (a *App) Login(ctx context.Context, identity, password string) (session.Profile, error) {
	auth, err := a.pocket.AuthWithPassword(ctx, identity, password)
	if err != nil {
		return session.Profile{}, err
	}

	profile := session.Profile{
		ID:       auth.Record.ID,
		Email:    auth.Record.Email,
		Username: auth.Record.Username,
		Name:     auth.Record.Name,
		Avatar:   auth.Record.Avatar,
	}
	a.session.SetUser(profile, auth.Token)

	a.log.Info("logged in", "user", profile.ID)
	return profile, nil
}

// Logout drops the session and the remembered farm.
func (a *App) Logout() error {
	a.session.ResetUser()

	a.mu.Lock()
	a.state.CurrentFarm = ""
	err := a.saveAppState()
	a.mu.Unlock()
	if err != nil {
		a.log.Warn("failed to save app state", "error", err)
	}

	a.log.Info("logged out")
	return nil
}

// IsAuthenticated reports whether a locally valid session is held.
func (a *App) IsAuthenticated() bool {
	return a.session.IsTokenValid()
}

// Credentials returns the token and user id for an authenticated call,
// or ErrSessionExpired when the local window has elapsed.
func (a *App) Credentials() (token, userID string, err error) {
	if !a.session.IsTokenValid() {
		return "", "", ErrSessionExpired
	}
	return a.session.Token(), a.session.UserID(), nil
}

// Session exposes the session manager, mostly for whoami-style output.
func (a *App) Session() *session.Manager {
	return a.session
}

// CurrentFarm returns the remembered default farm id, possibly empty.
func (a *App) CurrentFarm() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.CurrentFarm
}

// SetCurrentFarm remembers the farm the commands operate on by default.
func (a *App) SetCurrentFarm(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.CurrentFarm = id
	if err := a.saveAppState(); err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}
	return nil
}

func (a *App) PageSize() int {
	return a.config.PageSize
}

func (a *App) PestLogs() *pestlog.Service                 { return a.pestLogs }
func (a *App) Cleaning() *cleaning.Service                { return a.cleaning }
func (a *App) Staff() *staff.Service                      { return a.staff }
func (a *App) WastePlans() *wasteplan.Service             { return a.wastePlans }
func (a *App) CadaverPlans() *cadaverplan.Service         { return a.cadaverPlans }
func (a *App) MaintenancePlans() *maintenanceplan.Service { return a.maintenancePlans }
func (a *App) FarmDetails() *farmdetail.Service           { return a.farmDetails }
func (a *App) Training() *training.Service                { return a.training }
func (a *App) Farms() *farm.Service                       { return a.farms }

// Close releases the local database handle if one is open.
func (a *App) Close() error {
	if closer, ok := a.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
