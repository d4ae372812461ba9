package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/models"
)

// AdminSecretName is the access_secrets row guarding the content API.
const AdminSecretName = "admin"

// DefaultParams cost about 19 MiB and two passes per hash check.
var DefaultParams = &argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// ParamsFromConfig returns the hash parameters of cfg, DefaultParams for unset fields.
func ParamsFromConfig(cfg config.Admin) *argon2id.Params {
	p := *DefaultParams

	if cfg.HashMemoryKiB != 0 {
		p.Memory = cfg.HashMemoryKiB
	}
	if cfg.HashIterations != 0 {
		p.Iterations = cfg.HashIterations
	}
	if cfg.HashParallelism != 0 {
		p.Parallelism = cfg.HashParallelism
	}

	return &p
}

// verified remembers the last secret that matched a stored hash.
type verified struct {
	hash   string
	digest [sha256.Size]byte
}

// Guard authorizes mutating requests against the stored shared secret.
type Guard struct {
	db *gorm.DB

	// Params are the argon2id parameters used when a secret is hashed.
	Params *argon2id.Params

	mu   sync.Mutex
	last verified
}

// NewGuard creates a guard using DefaultParams.
func NewGuard(db *gorm.DB) *Guard {
	return &Guard{
		db:     db,
		Params: DefaultParams,
	}
}

// Authorize reports whether secret matches the stored secret.
// An empty secret, a missing stored secret or a lookup failure never authorize.
//
// Only the first match of a stored hash runs argon2id; repeated requests with the
// same secret are compared against its remembered sha256 digest. A hash stored
// with parameters other than Params is replaced after a successful match.
func (g *Guard) Authorize(secret string) bool {
	if secret == "" || g.db == nil {
		return false
	}

	hash, err := g.hash(g.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load guard secret")
		return false
	}

	digest := sha256.Sum256([]byte(secret))
	if g.remembered(hash, digest) {
		return true
	}

	match, err := argon2id.ComparePasswordAndHash(secret, hash)
	if err != nil {
		log.Error().Err(err).Msg("failed to compare guard secret")
		return false
	}
	if !match {
		return false
	}

	if g.outdated(hash) {
		if err := g.Rotate(secret); err != nil {
			log.Error().Err(err).Msg("failed to rehash guard secret")
		}

		return true
	}

	g.remember(hash, digest)

	return true
}

// IsSet reports whether a secret has been stored.
func (g *Guard) IsSet() (bool, error) {
	if g.db == nil {
		return false, ErrDBNil
	}

	_, err := g.hash(g.db)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrSecretNotSet):
		return false, nil
	default:
		return false, err
	}
}

// Rotate replaces the stored secret.
func (g *Guard) Rotate(secret string) error {
	return g.RotateTx(g.db, secret)
}

// RotateTx replaces the stored secret using tx, so it can join an open transaction.
func (g *Guard) RotateTx(tx *gorm.DB, secret string) error {
	if tx == nil {
		return ErrDBNil
	}
	if secret == "" {
		return ErrEmptySecret
	}

	hash, err := argon2id.CreateHash(secret, g.Params)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}

	g.forget()

	row := models.AccessSecret{
		Name:      AdminSecretName,
		Hash:      hash,
		UpdatedAt: time.Now(),
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"hash", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}

	return nil
}

func (g *Guard) hash(db *gorm.DB) (string, error) {
	var row models.AccessSecret

	result := db.Where(&models.AccessSecret{Name: AdminSecretName}).Limit(1).Find(&row)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrSecretNotSet
	}

	return row.Hash, nil
}

// outdated reports whether hash was created with parameters other than Params.
func (g *Guard) outdated(hash string) bool {
	p, _, _, err := argon2id.DecodeHash(hash)
	if err != nil || g.Params == nil {
		return false
	}

	return p.Memory != g.Params.Memory ||
		p.Iterations != g.Params.Iterations ||
		p.Parallelism != g.Params.Parallelism
}

func (g *Guard) remembered(hash string, digest [sha256.Size]byte) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.last.hash != "" && g.last.hash == hash &&
		subtle.ConstantTimeCompare(g.last.digest[:], digest[:]) == 1
}

func (g *Guard) remember(hash string, digest [sha256.Size]byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.last = verified{hash: hash, digest: digest}
}

func (g *Guard) forget() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.last = verified{}
}
