package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/solmart/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Owner  *string `bson:"owner,omitempty"`
		Price  *uint64 `bson:"price,omitempty"`
		Listed *bool   `bson:"listed,omitempty"`
		Note   string  `bson:"note"`
	}

	patchable := &PatchableListing{
		Owner:  ptr.String(""),
		Price:  ptr.Uint64(500000000),
		Listed: ptr.Bool(false),
		Note:   "relisted",
	}

	bsonM, err := MakeBsonM(patchable)
	assert.NoError(t, err)
	// zero values behind non-nil pointers are still patched
	assert.Equal(t, bson.M{
		"owner":  "",
		"price":  uint64(500000000),
		"listed": false,
		"note":   "relisted",
	}, bsonM)

	empty := &PatchableListing{}
	bsonM, err = MakeBsonM(empty)
	assert.NoError(t, err)
	assert.Equal(t, bson.M{}, bsonM)
}
