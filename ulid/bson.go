package ulid

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"golang.org/x/xerrors"
)

const bsonBinaryGeneric byte = 0x00

// MarshalBSONValue stores id as its 26 character string, which keeps
// sorting on the field in id order.
func (id ULID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, id.String()), nil
}

// UnmarshalBSONValue accepts the string form and 16 byte generic binary.
func (id *ULID) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	switch t {
	case bsontype.String:
		s, _, ok := bsoncore.ReadString(b)
		if !ok {
			return xerrors.Errorf("malformed bson string for ulid")
		}

		return id.UnmarshalText([]byte(s))
	case bsontype.Binary:
		subtype, bin, _, ok := bsoncore.ReadBinary(b)
		if !ok {
			return xerrors.Errorf("malformed bson binary for ulid")
		} else if subtype != bsonBinaryGeneric {
			return xerrors.Errorf("unsupported bson binary subtype for ulid, %x", subtype)
		}

		return id.UnmarshalBinary(bin)
	default:
		return xerrors.Errorf("unsupported bson type for ulid, %v", t)
	}
}
