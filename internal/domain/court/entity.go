package court

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyCourtName   = errors.New("court name cannot be empty")
	ErrCourtNameTooLong = errors.New("court name is too long (max 255 characters)")
)

const (
	MaxCourtNameLength = 255
)

type Court struct {
	id        int64
	name      string
	isCovered bool
	createdAt time.Time
	updatedAt time.Time
}

// NewCourt validates a court that has not been stored yet; its ID is zero.
func NewCourt(name string, isCovered bool) (*Court, error) {
	if err := validateCourtName(name); err != nil {
		return nil, err
	}

	return &Court{
		name:      strings.TrimSpace(name),
		isCovered: isCovered,
	}, nil
}

func ReconstructCourt(id int64, name string, isCovered bool, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:        id,
		name:      name,
		isCovered: isCovered,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// WithID returns a copy bound to an existing record, used for full replacement on update.
func (c *Court) WithID(id int64) *Court {
	cp := *c
	cp.id = id
	return &cp
}

func validateCourtName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourtName
	}
	if utf8.RuneCountInString(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) ID() int64            { return c.id }
func (c *Court) Name() string         { return c.name }
func (c *Court) IsCovered() bool      { return c.isCovered }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
