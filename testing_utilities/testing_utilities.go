package testing_utilities

import(
  "testing"
  "github.com/stretchr/testify/require"
)

// Assert fails the test if the condition is false.
func Assert(tb testing.TB, condition bool, msg string, v ...interface{}) {
  tb.Helper()
  require.Truef(tb, condition, msg, v...)
}

// Ok fails the test if an err is not nil.
func Ok(tb testing.TB, err error) {
  tb.Helper()
  require.NoError(tb, err)
}

// Equals fails the test if exp is not equal to act.
func Equals(tb testing.TB, exp, act interface{}) {
  tb.Helper()
  require.Equal(tb, exp, act)
}

// InDelta fails the test if exp and act differ by more than delta.
func InDelta(tb testing.TB, exp, act, delta float64) {
  tb.Helper()
  require.InDelta(tb, exp, act, delta)
}
