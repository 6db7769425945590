package services

import (
	"errors"
	"fmt"
	"log"
	"planova/internal/repository"
	"planova/internal/utils"
	"sync"
	"time"

	"github.com/robfig/cron"
)

// SubscriptionSweeper periodically expires subscriptions past their end date
// and moves their users back to the free role.
type SubscriptionSweeper struct {
	subs   repository.SubscriptionRepository
	users  repository.UserRepository
	mailer utils.Mailer

	spec string
	now  func() time.Time

	cron    *cron.Cron
	running bool
	mu      sync.Mutex
	sweepMu sync.Mutex
}

func NewSubscriptionSweeper(
	subs repository.SubscriptionRepository,
	users repository.UserRepository,
	mailer utils.Mailer,
	spec string,
) *SubscriptionSweeper {
	if spec == "" {
		spec = "@hourly"
	}
	return &SubscriptionSweeper{
		subs:   subs,
		users:  users,
		mailer: mailer,
		spec:   spec,
		now:    time.Now,
	}
}

func (s *SubscriptionSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	c := cron.New()
	if err := c.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.spec, err)
	}
	c.Start()

	s.cron = c
	s.running = true
	log.Printf("Subscription sweeper started (schedule %s)", s.spec)
	return nil
}

func (s *SubscriptionSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}

	s.cron.Stop()
	s.running = false
	log.Println("Subscription sweeper stopped")
}

func (s *SubscriptionSweeper) run() {
	expired, err := s.Sweep()
	if err != nil {
		log.Printf("Subscription sweep finished with errors: %v", err)
	}
	if expired > 0 {
		log.Printf("Subscription sweep expired %d subscriptions", expired)
	}
}

// Sweep expires every overdue subscription and returns how many were expired.
// Failures on single rows do not stop the sweep.
func (s *SubscriptionSweeper) Sweep() (int, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	now := s.now()
	due, err := s.subs.FindExpired(now)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired subscriptions: %w", err)
	}

	var (
		expired int
		errs    []error
	)
	for i := range due {
		sub := &due[i]
		if err := s.subs.Expire(sub, now); err != nil {
			errs = append(errs, fmt.Errorf("subscription %d: %w", sub.ID, err))
			continue
		}
		expired++
		s.notify(sub.UserID)
	}

	return expired, errors.Join(errs...)
}

func (s *SubscriptionSweeper) notify(userID uint) {
	if s.mailer == nil {
		return
	}
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		log.Printf("Skipping expiry email for user %d: %v", userID, err)
		return
	}
	subject, body := utils.SubscriptionEndedEmail()
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("Failed to send expiry email to %s: %v", user.Email, err)
	}
}
