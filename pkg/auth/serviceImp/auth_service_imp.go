package serviceImp

import (
	"sync"

	"github.com/google/uuid"

	"jagung/entities"
	"jagung/pkg/auth/service"
	"jagung/pkg/datastore/repository"
)

type authSvc struct {
	store repository.TableStore

	mu       sync.Mutex
	sessions map[string]entities.Session
}

func New(store repository.TableStore) service.AuthService {
	return &authSvc{store: store, sessions: map[string]entities.Session{}}
}

func (s *authSvc) Authenticate(username, password string) (*entities.Session, error) {
	users, err := s.store.Load(entities.TableUsers)
	if err != nil {
		return nil, service.ErrInvalidCredentials
	}
	for i := 0; i < users.Len(); i++ {
		if users.Cell(i, "username") == username && users.Cell(i, "password") == password {
			sess := entities.Session{
				Token:    uuid.NewString(),
				Username: username,
				Role:     entities.Role(users.Cell(i, "role")),
			}
			s.mu.Lock()
			s.sessions[sess.Token] = sess
			s.mu.Unlock()
			return &sess, nil
		}
	}
	return nil, service.ErrInvalidCredentials
}

func (s *authSvc) Lookup(token string) (*entities.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &sess, true
}

func (s *authSvc) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
