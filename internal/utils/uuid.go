package utils

import "github.com/google/uuid"

// TraceIDHeader carries the request trace id between the admin client and
// the receiver.
const TraceIDHeader = "X-Trace-ID"

// UUIDGenerator produces trace ids. Time-ordered v7 ids are preferred so log
// lines sort by submission time; a random v4 id is used if v7 fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
