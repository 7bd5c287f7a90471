package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"stockmaster/models"
)

// Storage keys match the original browser build, so a state file exported from
// it stays readable here.
const (
	keySession      = "stock_user"
	keyUsers        = "stock_users_list"
	keyTransactions = "stock_transactions"
)

var (
	// ErrStorage wraps persistence failures so handlers can report them
	// distinctly from validation problems.
	ErrStorage = errors.New("storage failure")
	// ErrLastUser guards the final remaining credential record.
	ErrLastUser = errors.New("cannot delete the last remaining user")
	// ErrUserExists rejects duplicate user names.
	ErrUserExists   = errors.New("user name already taken")
	ErrUserNotFound = errors.New("user not found")
)

// All state lives behind one mutex. The original ran single-writer by
// construction (one browser tab); an HTTP server does not, so every mutation
// serializes here.
var (
	mu           sync.RWMutex
	db           *sql.DB
	transactions []models.Transaction
	users        []models.User
	session      *models.User
)

// Init opens (or creates) the backing database, loads the three persisted
// entries into memory and seeds the default administrator account on first
// run.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		db.Close()
	}

	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	transactions = nil
	users = nil
	session = nil

	if _, err := loadEntry(keyTransactions, &transactions); err != nil {
		return err
	}

	if ok, err := loadEntry(keyUsers, &users); err != nil {
		return err
	} else if !ok || len(users) == 0 {
		users = []models.User{{ID: "1", Name: "admin", Password: "admin", Role: models.RoleAdmin}}
		if err := saveEntry(keyUsers, users); err != nil {
			return err
		}
		log.Println("Seeded default administrator account")
	}

	var current models.User
	if ok, err := loadEntry(keySession, &current); err != nil {
		return err
	} else if ok {
		session = &current
	}

	return nil
}

// Close releases the database handle.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// AppendTransaction assigns a fresh identifier, prepends the movement to the
// log (newest first) and rewrites the persisted collection whole. Validation
// is the caller's responsibility; the log accepts any well-formed record.
func AppendTransaction(tx models.Transaction) (models.Transaction, error) {
	mu.Lock()
	defer mu.Unlock()

	tx.ID = uuid.NewString()
	updated := make([]models.Transaction, 0, len(transactions)+1)
	updated = append(updated, tx)
	updated = append(updated, transactions...)
	if err := saveEntry(keyTransactions, updated); err != nil {
		return models.Transaction{}, err
	}
	transactions = updated
	return tx, nil
}

// Transactions returns a copy of the full log, newest first.
func Transactions() []models.Transaction {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	return out
}

// Users returns a copy of all credential records, passwords included. Callers
// serving API responses must strip them.
func Users() []models.User {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]models.User, len(users))
	copy(out, users)
	return out
}

// AddUser assigns an identifier and persists the updated user list. Names are
// unique case-insensitively since login matches them that way.
func AddUser(u models.User) (models.User, error) {
	mu.Lock()
	defer mu.Unlock()

	for _, existing := range users {
		if strings.EqualFold(existing.Name, u.Name) {
			return models.User{}, ErrUserExists
		}
	}

	u.ID = uuid.NewString()
	updated := append(append([]models.User{}, users...), u)
	if err := saveEntry(keyUsers, updated); err != nil {
		return models.User{}, err
	}
	users = updated
	return u, nil
}

// DeleteUser removes a credential record. The last remaining user cannot be
// deleted, or the application would become unreachable.
func DeleteUser(id string) error {
	mu.Lock()
	defer mu.Unlock()

	if len(users) <= 1 {
		return ErrLastUser
	}

	updated := make([]models.User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		updated = append(updated, u)
	}
	if !found {
		return ErrUserNotFound
	}

	if err := saveEntry(keyUsers, updated); err != nil {
		return err
	}
	users = updated
	return nil
}

// Authenticate matches a credential record by name (case-insensitive),
// password and role. It reports only success or failure; callers must not
// reveal which part of the credentials was wrong.
func Authenticate(name, password string, role models.Role) (models.User, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, u := range users {
		if strings.EqualFold(u.Name, name) && u.Password == password && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

// SetSession persists the logged-in user record.
func SetSession(u models.User) error {
	mu.Lock()
	defer mu.Unlock()

	if err := saveEntry(keySession, u); err != nil {
		return err
	}
	session = &u
	return nil
}

// ClearSession removes the persisted session entry.
func ClearSession() error {
	mu.Lock()
	defer mu.Unlock()

	if _, err := db.Exec(`DELETE FROM app_state WHERE key = ?`, keySession); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	session = nil
	return nil
}

// Session returns the currently logged-in user, if any.
func Session() (models.User, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if session == nil {
		return models.User{}, false
	}
	return *session, true
}

func loadEntry(key string, target any) (bool, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return true, nil
}

// saveEntry rewrites one entry whole. In-memory state is only updated after a
// successful write, so a persistence failure never leaves the two diverged.
func saveEntry(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if _, err := db.Exec(`
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
