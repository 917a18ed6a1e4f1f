package simulation

import "slices"

// Store is a plain container for the live bullets and targets. It does no
// validation; the step enforces every rule.
type Store struct {
	bullets []*Bullet
	targets []*Target
	nextID  uint64
}

// NewID hands out a fresh entity identity.
func (s *Store) NewID() uint64 {
	s.nextID++
	return s.nextID
}

// AddBullet appends a bullet.
func (s *Store) AddBullet(b *Bullet) {
	s.bullets = append(s.bullets, b)
}

// AddTarget appends a target.
func (s *Store) AddTarget(t *Target) {
	s.targets = append(s.targets, t)
}

// RemoveBullet drops the bullet with the given ID and reports whether it was present.
func (s *Store) RemoveBullet(id uint64) bool {
	i := slices.IndexFunc(s.bullets, func(b *Bullet) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	s.bullets = slices.Delete(s.bullets, i, i+1)
	return true
}

// RemoveTarget drops the target with the given ID and reports whether it was present.
func (s *Store) RemoveTarget(id uint64) bool {
	i := slices.IndexFunc(s.targets, func(t *Target) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	s.targets = slices.Delete(s.targets, i, i+1)
	return true
}

// Bullets returns the live bullets. The slice is owned by the store and is
// only valid until the next mutation.
func (s *Store) Bullets() []*Bullet {
	return s.bullets
}

// Targets returns the live targets, with the same ownership rule as Bullets.
func (s *Store) Targets() []*Target {
	return s.targets
}

// LenBullets returns the number of live bullets.
func (s *Store) LenBullets() int { return len(s.bullets) }

// LenTargets returns the number of live targets.
func (s *Store) LenTargets() int { return len(s.targets) }

// Clear empties both collections. IDs keep counting up.
func (s *Store) Clear() {
	clear(s.bullets)
	clear(s.targets)
	s.bullets = s.bullets[:0]
	s.targets = s.targets[:0]
}
