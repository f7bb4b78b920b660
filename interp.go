package gm

// Lerp linearly interpolates between from and to. The weight is not clamped,
// values outside [0, 1] extrapolate.
func Lerp[S Float](from, to, weight S) S {
	return from + weight*(to-from)
}

// InverseLerp returns the interpolation weight that would produce value
// between from and to. Equal bounds divide by zero and yield IEEE
// infinity or NaN on purpose; see Remap for the usual consumer.
func InverseLerp[S Float](from, to, value S) S {
	return (value - from) / (to - from)
}

// Remap maps value from the range [istart, istop] to [ostart, ostop]. Values
// outside the input range extrapolate.
func Remap[S Float](value, istart, istop, ostart, ostop S) S {
	return Lerp(ostart, ostop, InverseLerp(istart, istop, value))
}

// LerpAngle interpolates between two angles along the shortest of the two
// arcs connecting them, so it never takes the long way around the circle.
func LerpAngle[A Angle](from, to, weight A) A {
	turn := fullTurn[A]()

	difference := Fmod(to-from, turn)
	distance := Fmod(2*difference, turn) - difference
	return from + distance*weight
}

// CubicInterpolate interpolates between from and to with a Catmull-Rom style
// cubic using the neighboring control values pre and post.
func CubicInterpolate[S Float](from, to, pre, post, weight S) S {
	return 0.5 *
		((from * 2.0) +
			(-pre+to)*weight +
			(2.0*pre-5.0*from+4.0*to-post)*(weight*weight) +
			(-pre+3.0*from-3.0*to+post)*(weight*weight*weight))
}

// foldControlPoints re-expresses the four control angles relative to from via
// shortest-path folding, so consecutive control points never sit more than
// half a turn apart.
func foldControlPoints[A Angle](from, to, pre, post A) (fromRot, toRot, preRot, postRot A) {
	turn := fullTurn[A]()

	fromRot = Fmod(from, turn)

	preDiff := Fmod(pre-fromRot, turn)
	preRot = fromRot + Fmod(2*preDiff, turn) - preDiff

	toDiff := Fmod(to-fromRot, turn)
	toRot = fromRot + Fmod(2*toDiff, turn) - toDiff

	postDiff := Fmod(post-toRot, turn)
	postRot = toRot + Fmod(2*postDiff, turn) - postDiff

	return fromRot, toRot, preRot, postRot
}

// CubicInterpolateAngle is CubicInterpolate over angles, with the control
// values folded onto the shortest path first.
func CubicInterpolateAngle[A Angle](from, to, pre, post, weight A) A {
	fromRot, toRot, preRot, postRot := foldControlPoints(from, to, pre, post)
	return CubicInterpolate(fromRot, toRot, preRot, postRot, weight)
}

// CubicInterpolateInTime interpolates between unevenly time-spaced control
// points with the Barry-Goldman method. The control values arrive at times
// preT <= 0 <= toT <= postT, with from at time zero. Zero-length intervals
// fall back to fixed blend weights instead of dividing by zero.
func CubicInterpolateInTime[S Float](from, to, pre, post, weight, toT, preT, postT S) S {
	/* Barry-Goldman method */
	t := Lerp(0, toT, weight)

	a1 := Lerp(pre, from, fallbackWeight(preT == 0, 0, (t-preT)/-preT))
	a2 := Lerp(from, to, fallbackWeight(toT == 0, 0.5, t/toT))
	a3 := Lerp(to, post, fallbackWeight(postT-toT == 0, 1, (t-toT)/(postT-toT)))

	b1 := Lerp(a1, a2, fallbackWeight(toT-preT == 0, 0, (t-preT)/(toT-preT)))
	b2 := Lerp(a2, a3, fallbackWeight(postT == 0, 1, t/postT))

	return Lerp(b1, b2, fallbackWeight(toT == 0, 0.5, t/toT))
}

func fallbackWeight[S Float](degenerate bool, fallback, weight S) S {
	if degenerate {
		return fallback
	}
	return weight
}

// CubicInterpolateAngleInTime composes the angle folding of
// CubicInterpolateAngle with the time-aware blend of CubicInterpolateInTime.
func CubicInterpolateAngleInTime[A Angle](from, to, pre, post, weight, toT, preT, postT A) A {
	fromRot, toRot, preRot, postRot := foldControlPoints(from, to, pre, post)
	return CubicInterpolateInTime(fromRot, toRot, preRot, postRot, weight, toT, preT, postT)
}

// BezierInterpolate evaluates a cubic Bezier curve from start to end with the
// control points control1 and control2 at t.
func BezierInterpolate[S Float](start, control1, control2, end, t S) S {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t

	return start*omt3 + control1*omt2*t*3 + control2*omt*t2*3 + end*t3
}

// Smoothstep returns the hermite-smoothed interpolation weight of weight
// between from and to, clamped to [0, 1]. Approximately equal bounds return
// from unchanged.
func Smoothstep[S Float](from, to, weight S) S {
	if IsEqualApprox(from, to) {
		return from
	}
	x := Clamp((weight-from)/(to-from), 0, 1)
	return x * x * (3 - 2*x)
}

// MoveToward moves from toward to by delta, without ever overshooting to.
func MoveToward[S Float](from, to, delta S) S {
	if Abs(to-from) <= delta {
		return to
	}
	return from + Sign(to-from)*delta
}
