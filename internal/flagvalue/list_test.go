package flagvalue

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringValue string

var _ flag.Getter = (*stringValue)(nil)

func (sv *stringValue) Get() any       { return sv.String() }
func (sv *stringValue) String() string { return string(*sv) }
func (sv *stringValue) Set(s string) error {
	*sv = stringValue(s)
	return nil
}

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc       string
		give       []string
		want       []stringValue
		wantString string
	}{
		{
			desc: "no arguments",
			give: []string{"-y"},
		},
		{
			desc:       "separate",
			give:       []string{"-x", "foo"},
			want:       []stringValue{"foo"},
			wantString: "foo",
		},
		{
			desc:       "joint",
			give:       []string{"-x=foo"},
			want:       []stringValue{"foo"},
			wantString: "foo",
		},
		{
			desc:       "multiple",
			give:       []string{"-x", "foo", "-x=bar"},
			want:       []stringValue{"foo", "bar"},
			wantString: "foo; bar",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			fset.SetOutput(io.Discard)

			var got []stringValue
			list := ListOf(&got)
			fset.Var(list, "x", "")
			_ = fset.Bool("y", false, "")
			require.NoError(t, fset.Parse(tt.give))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, list.Get(), "Get")
			assert.Equal(t, tt.wantString, list.String(), "String")
		})
	}
}

type failValue struct{ stringValue }

func (*failValue) Set(string) error {
	return errors.New("great sadness")
}

func TestList_setError(t *testing.T) {
	t.Parallel()

	var got []failValue
	err := ListOf(&got).Set("x")
	assert.ErrorContains(t, err, "great sadness")
	assert.Empty(t, got)
}
