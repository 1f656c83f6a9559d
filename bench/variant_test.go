package bench_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sghaida/diperf/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type instance struct{ id int }

func okVariant() *bench.VariantBenchmark[*instance] {
	return bench.NewVariant(
		func() (*instance, error) { return &instance{}, nil },
		func(*instance) error { return nil },
		func(*instance) error { return nil },
	)
}

func TestVariant_RecordsOneSamplePerPhasePerRound(t *testing.T) {
	t.Parallel()

	v := okVariant()
	for range 5 {
		require.NoError(t, v.Run())
	}

	assert.Equal(t, 5, v.Rounds())
	assert.Len(t, v.SetupTimes(), 5)
	assert.Len(t, v.InjectionTimes(), 5)
	assert.Len(t, v.TeardownTimes(), 5)
	for _, d := range v.SetupTimes() {
		assert.GreaterOrEqual(t, int64(d), int64(0))
	}
}

func TestVariant_NoRoundsNoSamples(t *testing.T) {
	t.Parallel()

	r := okVariant().Result()
	assert.Empty(t, r.Setup)
	assert.Empty(t, r.Injection)
	assert.Empty(t, r.Teardown)
}

func TestVariant_PassesSetupInstanceThrough(t *testing.T) {
	t.Parallel()

	var used, released *instance
	created := &instance{id: 7}
	v := bench.NewVariant(
		func() (*instance, error) { return created, nil },
		func(i *instance) error { used = i; return nil },
		func(i *instance) error { released = i; return nil },
	)

	require.NoError(t, v.Run())
	assert.Same(t, created, used)
	assert.Same(t, created, released)
}

func TestVariant_FailuresLeaveNoPartialSamples(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cases := []struct {
		name      string
		setup     func() (*instance, error)
		use       func(*instance) error
		teardown  func(*instance) error
		wantPhase bench.Phase
		wantIs    error
	}{
		{
			name:      "setup error",
			setup:     func() (*instance, error) { return nil, boom },
			wantPhase: bench.PhaseSetup,
			wantIs:    boom,
		},
		{
			name:      "nil instance",
			setup:     func() (*instance, error) { return nil, nil },
			wantPhase: bench.PhaseSetup,
			wantIs:    bench.ErrNoInstance,
		},
		{
			name:      "use error",
			use:       func(*instance) error { return boom },
			wantPhase: bench.PhaseInjection,
			wantIs:    boom,
		},
		{
			name:      "teardown error",
			teardown:  func(*instance) error { return boom },
			wantPhase: bench.PhaseTeardown,
			wantIs:    boom,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			setup := func() (*instance, error) { return &instance{}, nil }
			use := func(*instance) error { return nil }
			teardown := func(*instance) error { return nil }
			if tc.setup != nil {
				setup = tc.setup
			}
			if tc.use != nil {
				use = tc.use
			}
			if tc.teardown != nil {
				teardown = tc.teardown
			}

			v := bench.NewVariant(setup, use, teardown)
			err := v.Run()
			require.ErrorIs(t, err, tc.wantIs)

			var pe *bench.PhaseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.wantPhase, pe.Phase)
			assert.Contains(t, err.Error(), string(tc.wantPhase))

			assert.Zero(t, v.Rounds())
			assert.Empty(t, v.InjectionTimes())
			assert.Empty(t, v.TeardownTimes())
		})
	}
}

func TestVariant_FailureAfterSuccessKeepsEarlierSamples(t *testing.T) {
	t.Parallel()

	calls := 0
	v := bench.NewVariant(
		func() (*instance, error) {
			calls++
			if calls == 2 {
				return nil, errors.New("second call fails")
			}
			return &instance{}, nil
		},
		func(*instance) error { return nil },
		func(*instance) error { return nil },
	)

	require.NoError(t, v.Run())
	require.Error(t, v.Run())

	assert.Len(t, v.SetupTimes(), 1)
	assert.Len(t, v.InjectionTimes(), 1)
	assert.Len(t, v.TeardownTimes(), 1)
}

func TestVariant_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	v := okVariant()
	require.NoError(t, v.Run())

	s := v.SetupTimes()
	s[0] = -1
	r := v.Result()
	r.Injection[0] = -1

	assert.NotEqual(t, -1, int(v.SetupTimes()[0]))
	assert.NotEqual(t, -1, int(v.InjectionTimes()[0]))
}

func TestNewVariant_PanicsOnNilOperation(t *testing.T) {
	t.Parallel()

	setup := func() (*instance, error) { return &instance{}, nil }
	op := func(*instance) error { return nil }

	assert.Panics(t, func() { bench.NewVariant(nil, op, op) })
	assert.Panics(t, func() { bench.NewVariant(setup, nil, op) })
	assert.Panics(t, func() { bench.NewVariant(setup, op, nil) })
}

func TestLibraryBenchmark_Result(t *testing.T) {
	t.Parallel()

	plain, bean := okVariant(), okVariant()
	require.NoError(t, plain.Run())
	require.NoError(t, plain.Run())
	require.NoError(t, bean.Run())

	got := bench.LibraryBenchmark{Name: "fake", Plain: plain, Bean: bean}.Result()
	assert.Equal(t, "fake", got.Name)
	assert.Len(t, got.Plain.Setup, 2)
	assert.Len(t, got.Bean.Teardown, 1)
	assert.Equal(t, got.Plain.Injection, got.Plain.Samples(bench.PhaseInjection))
	assert.Nil(t, got.Plain.Samples(bench.Phase("bogus")))
}

func TestVariant_SamplesLandInTheirOwnPhase(t *testing.T) {
	t.Parallel()

	const slow = 5 * time.Millisecond
	sleep := func(*instance) error { time.Sleep(slow); return nil }
	fast := func(*instance) error { return nil }
	setup := func() (*instance, error) { return &instance{}, nil }

	cases := []struct {
		name     string
		use      func(*instance) error
		teardown func(*instance) error
		slowest  bench.Phase
	}{
		{name: "slow use", use: sleep, teardown: fast, slowest: bench.PhaseInjection},
		{name: "slow teardown", use: fast, teardown: sleep, slowest: bench.PhaseTeardown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := bench.NewVariant(setup, tc.use, tc.teardown)
			require.NoError(t, v.Run())

			r := v.Result()
			for _, p := range bench.Phases {
				got := r.Samples(p)[0]
				if p == tc.slowest {
					assert.GreaterOrEqual(t, got, slow, p)
					continue
				}
				assert.Less(t, got, slow, p)
			}
		})
	}
}
