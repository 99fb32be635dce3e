package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestValidatorRejectsDuplicateCTENames(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("WITH a AS (SELECT 1), a AS (SELECT 2) SELECT * FROM a")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidatorAcceptsDistinctCTENames(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("WITH a AS (SELECT 1), b AS (SELECT 2) SELECT * FROM a, b")
	assert.NoError(t, err)
}

func TestValidatorAcceptsValuesAsSetOpArm(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("SELECT 1 UNION VALUES (1)")
	assert.NoError(t, err)
}
