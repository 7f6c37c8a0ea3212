package textconv

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	testCases := []struct {
		name     string
		target   *Type
		expected string
	}{
		{"scalar", ScalarFor[int](), "int"},
		{"list default", ListOf(nil), "List[string]"},
		{"set", SetOf(reflect.TypeOf(0)), "Set[int]"},
		{"sorted set", SortedSetOf(nil), "SortedSet[string]"},
		{"map defaults", MapOf(nil, nil), "Map[string,string]"},
		{"sorted map", SortedMapOf(nil, reflect.TypeOf(0)), "SortedMap[string,int]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.target.String())
		})
	}
}

func TestTypeOf(t *testing.T) {
	target := TypeOf(reflect.TypeOf([]int{}))
	assert.Equal(t, KindList, target.Kind())
	assert.Equal(t, reflect.TypeOf(0), target.Elem())

	target = TypeOf(reflect.TypeOf(map[string]int{}))
	assert.Equal(t, KindMap, target.Kind())
	assert.Equal(t, stringType, target.Key())
	assert.Equal(t, reflect.TypeOf(0), target.Elem())

	target = TypeOf(reflect.TypeOf(""))
	assert.Equal(t, KindScalar, target.Kind())
}
