// Package memory реализует хранилище в памяти процесса. Используется в тестах
// и при storage.driver: memory. Данные теряются при перезапуске.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sohagq3024/my-secret-web-2.0/internal/models"
)

// Storage хранит все сущности в картах под одной блокировкой.
type Storage struct {
	mu sync.RWMutex

	users       map[int]models.User
	requests    map[int]models.MembershipRequest
	memberships map[int]models.ActiveMembership
	celebrities map[int]models.Celebrity
	albums      map[int]models.Album
	videos      map[int]models.Video
	slides      map[int]models.SlideshowImage

	seq map[string]int
	now func() time.Time
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		users:       make(map[int]models.User),
		requests:    make(map[int]models.MembershipRequest),
		memberships: make(map[int]models.ActiveMembership),
		celebrities: make(map[int]models.Celebrity),
		albums:      make(map[int]models.Album),
		videos:      make(map[int]models.Video),
		slides:      make(map[int]models.SlideshowImage),
		seq:         make(map[string]int),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// nextID выдаёт следующий идентификатор для вида сущности. Вызывать под mu.
func (s *Storage) nextID(kind string) int {
	s.seq[kind]++
	return s.seq[kind]
}

// Close нужен для совместимости с postgresql.Storage.
func (s *Storage) Close() error {
	return nil
}

// Ping всегда успешен, пока контекст не отменён.
func (s *Storage) Ping(ctx context.Context) error {
	return checkCtx(ctx, "storage.memory.Ping")
}

func checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}
