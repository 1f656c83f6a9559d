package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/diperf/di"
	"github.com/sghaida/diperf/payload/plain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafModule() *di.Module {
	m := di.NewModule("leaves")
	di.Provide(m, func(*di.Container) (*plain.Fib1, error) { return plain.NewFib1(), nil })
	di.Provide(m, func(*di.Container) (*plain.Fib2, error) { return plain.NewFib2(), nil })
	return m
}

func fib3Module() *di.Module {
	m := di.NewModule("fib3")
	di.Provide(m, func(c *di.Container) (*plain.Fib3, error) {
		return plain.NewFib3(di.MustGet[*plain.Fib2](c), di.MustGet[*plain.Fib1](c)), nil
	})
	return m
}

func TestContainer_GetResolvesAcrossModules(t *testing.T) {
	t.Parallel()

	c := di.NewContainer()
	require.NoError(t, c.LoadModule(leafModule()))
	require.NoError(t, c.LoadModule(fib3Module()))

	got, err := di.Get[*plain.Fib3](c)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value())
	assert.Equal(t, []string{"leaves", "fib3"}, c.Modules())
}

func TestContainer_GetCachesInstances(t *testing.T) {
	t.Parallel()

	calls := 0
	m := di.NewModule("counting")
	di.Provide(m, func(*di.Container) (*plain.Fib3, error) {
		calls++
		return &plain.Fib3{}, nil
	})

	c := di.NewContainer()
	require.NoError(t, c.LoadModule(m))

	first, err := di.Get[*plain.Fib3](c)
	require.NoError(t, err)
	second, err := di.Get[*plain.Fib3](c)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestContainer_UnloadDropsDefinitionsAndInstances(t *testing.T) {
	t.Parallel()

	c := di.NewContainer()
	require.NoError(t, c.LoadModule(leafModule()))
	require.NoError(t, c.LoadModule(fib3Module()))
	_, err := di.Get[*plain.Fib3](c)
	require.NoError(t, err)

	c.UnloadModules()
	assert.Empty(t, c.Modules())

	_, err = di.Get[*plain.Fib3](c)
	var missing di.MissingDependencyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, di.DependencyKey("*plain.Fib3"), missing.Key)

	// the same modules load again after an unload
	require.NoError(t, c.LoadModule(leafModule()))
	require.NoError(t, c.LoadModule(fib3Module()))
}

func TestContainer_LoadModuleErrors(t *testing.T) {
	t.Parallel()

	dupInModule := di.NewModule("dup")
	di.Provide(dupInModule, func(*di.Container) (*plain.Fib1, error) { return plain.NewFib1(), nil })
	di.Provide(dupInModule, func(*di.Container) (*plain.Fib1, error) { return plain.NewFib1(), nil })

	nilFactory := di.NewModule("nil-factory")
	di.Provide[*plain.Fib1](nilFactory, nil)

	cases := []struct {
		name    string
		preload *di.Module
		m       *di.Module
		wantIs  error
		wantDup di.DependencyKey
	}{
		{name: "nil module", m: nil, wantIs: di.ErrNilModule},
		{name: "nil factory", m: nilFactory, wantIs: di.ErrNilFactory},
		{name: "duplicate inside module", m: dupInModule, wantDup: "*plain.Fib1"},
		{name: "duplicate across modules", preload: leafModule(), m: leafModule(), wantDup: "*plain.Fib1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := di.NewContainer()
			if tc.preload != nil {
				require.NoError(t, c.LoadModule(tc.preload))
			}

			err := c.LoadModule(tc.m)
			require.Error(t, err)

			if tc.wantIs != nil {
				require.ErrorIs(t, err, tc.wantIs)
				return
			}
			var dup di.DuplicateKeyError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, tc.wantDup, dup.Key)
		})
	}
}

func TestContainer_FailedLoadIsAllOrNothing(t *testing.T) {
	t.Parallel()

	c := di.NewContainer()
	require.NoError(t, c.LoadModule(fib3Module()))

	m := di.NewModule("partial")
	di.Provide(m, func(*di.Container) (*plain.Fib1, error) { return plain.NewFib1(), nil })
	di.Provide(m, func(*di.Container) (*plain.Fib3, error) { return &plain.Fib3{}, nil })

	err := c.LoadModule(m)
	var dup di.DuplicateKeyError
	require.True(t, errors.As(err, &dup))

	_, err = di.Get[*plain.Fib1](c)
	assert.ErrorAs(t, err, &di.MissingDependencyError{})
	assert.Equal(t, []string{"fib3"}, c.Modules())
}

func TestContainer_GetErrors(t *testing.T) {
	t.Parallel()

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()

		m := di.NewModule("cycle")
		di.Provide(m, func(c *di.Container) (*plain.Fib3, error) {
			_, err := di.Get[*plain.Fib4](c)
			return nil, err
		})
		di.Provide(m, func(c *di.Container) (*plain.Fib4, error) {
			_, err := di.Get[*plain.Fib3](c)
			return nil, err
		})

		c := di.NewContainer()
		require.NoError(t, c.LoadModule(m))

		_, err := di.Get[*plain.Fib3](c)
		var cycle di.CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, di.DependencyKey("*plain.Fib3"), cycle.Key)
	})

	t.Run("factory error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		m := di.NewModule("failing")
		di.Provide(m, func(*di.Container) (*plain.Fib1, error) { return nil, boom })

		c := di.NewContainer()
		require.NoError(t, c.LoadModule(m))

		_, err := di.Get[*plain.Fib1](c)
		require.ErrorIs(t, err, boom)
	})

	t.Run("nil interface value", func(t *testing.T) {
		t.Parallel()

		m := di.NewModule("nil-value")
		di.Provide(m, func(*di.Container) (error, error) { return nil, nil })

		c := di.NewContainer()
		require.NoError(t, c.LoadModule(m))

		_, err := di.Get[error](c)
		var wrong di.WrongTypeDependencyError
		require.True(t, errors.As(err, &wrong))
		assert.Equal(t, "<nil>", wrong.GotType)
	})

	t.Run("must get panics", func(t *testing.T) {
		t.Parallel()

		c := di.NewContainer()
		assert.Panics(t, func() { di.MustGet[*plain.Fib1](c) })
	})
}

// Default is process-wide, so this test does not run in parallel.
func TestDefaultContainerHelpers(t *testing.T) {
	t.Cleanup(di.UnloadModules)

	require.NoError(t, di.LoadModule(leafModule()))
	require.NoError(t, di.LoadModule(fib3Module()))

	got, err := di.Lookup[*plain.Fib3]()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value())

	di.UnloadModules()
	_, err = di.Lookup[*plain.Fib3]()
	assert.ErrorAs(t, err, &di.MissingDependencyError{})
}
