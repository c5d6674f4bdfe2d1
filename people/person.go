package people

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// Person is an immutable record of someone's identity, name, date of birth and
// portrait. Two people are the same person when their ids match, whatever the
// other fields say.
type Person struct {
	id          uuid.UUID
	name        string
	dateOfBirth Date
	image       []byte
}

// NewWithID creates a person with exactly the given id. Nothing is validated.
func NewWithID(id uuid.UUID, name string, dateOfBirth Date, image []byte) *Person {
	return &Person{
		id:          id,
		name:        name,
		dateOfBirth: dateOfBirth,
		image:       bytes.Clone(image),
	}
}

// New creates a person with a freshly generated random id.
func New(name string, dateOfBirth Date, image []byte) *Person {
	return NewWithID(uuid.New(), name, dateOfBirth, image)
}

func (p *Person) ID() uuid.UUID {
	return p.id
}

func (p *Person) Name() string {
	return p.name
}

func (p *Person) DateOfBirth() Date {
	return p.dateOfBirth
}

// Image returns a copy of the stored image bytes; callers may modify it freely.
func (p *Person) Image() []byte {
	return bytes.Clone(p.image)
}

// WithName returns a new person with the same id and the given name.
func (p *Person) WithName(name string) *Person {
	return NewWithID(p.id, name, p.dateOfBirth, p.image)
}

// WithDateOfBirth returns a new person with the same id and the given date of birth.
func (p *Person) WithDateOfBirth(dateOfBirth Date) *Person {
	return NewWithID(p.id, p.name, dateOfBirth, p.image)
}

// WithImage returns a new person with the same id and the given image.
func (p *Person) WithImage(image []byte) *Person {
	return NewWithID(p.id, p.name, p.dateOfBirth, image)
}

// Equal reports whether other is the same person, judged by id alone.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.id == other.id
}

// Hash is derived from the id only, so it agrees with Equal.
func (p *Person) Hash() uint64 {
	if p == nil {
		return 0
	}
	return murmur3.Sum64(p.id[:])
}

func (p *Person) String() string {
	return "Person(" + p.name + ")"
}
