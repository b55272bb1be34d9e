package corerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_NilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(ClassLogic, nil, "msg"))
}

func TestClassOf_RoundTrips(t *testing.T) {
	err := Wrap(ClassDataIntegrity, errors.New("dup"), "insert task")
	class, ok := ClassOf(err)
	assert.True(t, ok)
	assert.Equal(t, ClassDataIntegrity, class)
}

func TestClassOf_UnwrappedErrorIsUnclassified(t *testing.T) {
	_, ok := ClassOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsDataIntegrity(t *testing.T) {
	assert.True(t, IsDataIntegrity(Wrap(ClassDataIntegrity, errors.New("dup"), "x")))
	assert.False(t, IsDataIntegrity(Wrap(ClassLogic, errors.New("missing"), "x")))
}

func TestSkip(t *testing.T) {
	assert.True(t, Skip(Wrap(ClassDeserialization, errors.New("bad utf8"), "x")))
	assert.True(t, Skip(Wrap(ClassLogic, errors.New("missing block"), "x")))
	assert.True(t, Skip(Wrap(ClassDataIntegrity, errors.New("dup"), "x")))
	assert.False(t, Skip(Wrap(ClassTransientInfra, errors.New("timeout"), "x")))
	assert.False(t, Skip(Wrap(ClassConfiguration, errors.New("bad flag"), "x")))
}
