package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"august/app/config"

	"github.com/samber/do"
)

// maxTurns caps each user's log; oldest entries are evicted first.
const maxTurns = 200

// Service stores one append-only JSON log per username. Appends for the same
// user are serialized on a per-user lock; different users never contend.
type Service struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	dir := filepath.Join(cfg.Data.Dir, "conversations")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create conversations dir: %w", err)
	}

	return &Service{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Service) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock := s.locks[username]
	if lock == nil {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}

	return lock
}

func (s *Service) filePath(username string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, username)

	return filepath.Join(s.dir, sanitized+"_chat.json")
}

// Append writes one turn to the user's log, enforcing the FIFO cap.
func (s *Service) Append(username string, turn Turn) error {
	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	turns := s.loadLocked(username)

	turns = append(turns, turn)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	return s.saveLocked(username, turns)
}

// Load returns the user's full log, oldest first. Missing or corrupted files
// read as an empty log, never an error.
func (s *Service) Load(username string) []Turn {
	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	return s.loadLocked(username)
}

func (s *Service) loadLocked(username string) []Turn {
	data, err := os.ReadFile(s.filePath(username))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read conversation log, treating as empty",
				"username", username,
				"error", err,
			)
		}
		return nil
	}

	var turns []Turn
	if err = json.Unmarshal(data, &turns); err != nil {
		slog.Warn("Corrupted conversation log, treating as empty",
			"username", username,
			"error", err,
		)
		return nil
	}

	return turns
}

func (s *Service) saveLocked(username string, turns []Turn) error {
	file, err := os.OpenFile(s.filePath(username), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create/open conversation log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(turns); err != nil {
		return fmt.Errorf("failed to encode conversation log: %w", err)
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush conversation log: %w", err)
	}

	return nil
}
