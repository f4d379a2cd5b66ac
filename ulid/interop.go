package ulid

import (
	"github.com/google/uuid"
	oklogulid "github.com/oklog/ulid"
)

// UUID returns id as a UUID holding the same 128 bits. The result carries
// no RFC 4122 version or variant.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

func ToOklog(id ULID) oklogulid.ULID {
	return oklogulid.ULID(id)
}

func FromOklog(o oklogulid.ULID) ULID {
	return ULID(o)
}
