package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardTrig(t *testing.T) {
	require.InDelta(t, 1.0, Rad(Pi/2).Sin(), 1e-15)
	require.InDelta(t, -1.0, Rad(Pi).Cos(), 1e-15)
	require.InDelta(t, 1.0, Rad(Pi/4).Tan(), 1e-15)

	require.InDelta(t, 1.0, Rad32(Pi/2).Sin(), 1e-6)
	require.InDelta(t, -1.0, Rad32(Pi).Cos(), 1e-6)

	// degree-typed angles have no trig of their own; convert first
	require.InDelta(t, 0.5, Deg(30).ToRad().Sin(), 1e-15)
}

func TestHyperbolicTrig(t *testing.T) {
	require.Equal(t, 0.0, Rad(0).Sinh())
	require.Equal(t, 1.0, Rad(0).Cosh())
	require.InDelta(t, 0.7615941559557649, Rad(1).Tanh(), 1e-15)
	require.InDelta(t, float32(1.1752012), Rad32(1).Sinh(), 1e-5)
}

func TestInverseTrigReturnsRadians(t *testing.T) {
	require.InDelta(t, Pi/2, float64(Asin(1)), 1e-15)
	require.InDelta(t, Pi, float64(Acos(-1)), 1e-15)
	require.InDelta(t, Pi/4, float64(Atan(1)), 1e-15)
	require.InDelta(t, Pi/4, float64(Atan2(1, 1)), 1e-15)
	require.InDelta(t, 3*Pi/4, float64(Atan2(1, -1)), 1e-15)

	require.InDelta(t, Pi/2, float64(Asinf(1)), 1e-6)
	require.InDelta(t, Pi, float64(Acosf(-1)), 1e-6)
	require.InDelta(t, Pi/4, float64(Atanf(1)), 1e-6)
	require.InDelta(t, Pi/4, float64(Atan2f(1, 1)), 1e-6)

	// forward and inverse compose to the identity
	require.InDelta(t, 0.3, float64(Asin(Rad(0.3).Sin())), 1e-15)
	require.InDelta(t, 45, float64(Atan2(1, 1).ToDeg()), 1e-12)
}

func TestSinc(t *testing.T) {
	// the singularity at zero is removed
	require.Equal(t, 1.0, Rad(0).Sinc())
	require.Equal(t, float32(1), Rad32(0).Sinc())

	require.InDelta(t, 2/Pi, Rad(Pi/2).Sinc(), 1e-15)
	require.InDelta(t, 0.958851077208406, Rad(0.5).Sinc(), 1e-15)
}

func TestSincn(t *testing.T) {
	require.Equal(t, 1.0, Rad(0).Sincn())
	// the normalized sinc has its first zero at 1
	require.InDelta(t, 0, Rad(1).Sincn(), 1e-15)
	require.InDelta(t, 2/Pi, Rad(0.5).Sincn(), 1e-15)

	require.InDelta(t, 2/Pi, float64(Rad32(0.5).Sincn()), 1e-6)
}

func TestPrecisionWrappers(t *testing.T) {
	require.Equal(t, 3.0, Floor(3.7))
	require.Equal(t, -4.0, Floor(-3.2))
	require.Equal(t, 4.0, Ceil(3.2))
	require.Equal(t, 3.0, Sqrt(9.0))
	require.Equal(t, 8.0, Pow(2.0, 3))
	require.Equal(t, 0.0, Log(1.0))
	require.Equal(t, 1.0, Exp(0.0))

	require.Equal(t, float32(3), Floor[float32](3.7))
	require.Equal(t, float32(3), Sqrt[float32](9))
	require.Equal(t, float32(8), Pow[float32](2, 3))

	// the wrappers accept angle values too and preserve the type
	require.Equal(t, Rad(3), Floor(Rad(3.7)))
	require.Equal(t, Deg32(4), Ceil(Deg32(3.2)))
}
