package pasta

import "gitlab.com/yawning/glv-voi/internal/pasta/field"

const (
	curveB  = 5
	curveB3 = 3 * curveB
)

// The complete addition formulas for short Weierstrass curves with
// `a = 0`, from "Complete addition formulas for prime order elliptic
// curves" by Renes, Costello, and Batina (Algorithms 7 and 9).
//
// See: https://eprint.iacr.org/2015/1060.pdf

func (v *Point[M]) addComplete(p, q *Point[M]) *Point[M] {
	var (
		b3                     field.Element[M]
		t0, t1, t2, t3, t4     field.Element[M]
		x3, y3, z3             field.Element[M]
		x1, y1, z1, x2, y2, z2 = &p.x, &p.y, &p.z, &q.x, &q.y, &q.z
	)
	b3.SetUint64(curveB3)

	t0.Multiply(x1, x2)   // 1. t0 = X1 * X2
	t1.Multiply(y1, y2)   // 2. t1 = Y1 * Y2
	t2.Multiply(z1, z2)   // 3. t2 = Z1 * Z2
	t3.Add(x1, y1)        // 4. t3 = X1 + Y1
	t4.Add(x2, y2)        // 5. t4 = X2 + Y2
	t3.Multiply(&t3, &t4) // 6. t3 = t3 * t4
	t4.Add(&t0, &t1)      // 7. t4 = t0 + t1
	t3.Subtract(&t3, &t4) // 8. t3 = t3 - t4
	t4.Add(y1, z1)        // 9. t4 = Y1 + Z1
	x3.Add(y2, z2)        // 10. X3 = Y2 + Z2
	t4.Multiply(&t4, &x3) // 11. t4 = t4 * X3
	x3.Add(&t1, &t2)      // 12. X3 = t1 + t2
	t4.Subtract(&t4, &x3) // 13. t4 = t4 - X3
	x3.Add(x1, z1)        // 14. X3 = X1 + Z1
	y3.Add(x2, z2)        // 15. Y3 = X2 + Z2
	x3.Multiply(&x3, &y3) // 16. X3 = X3 * Y3
	y3.Add(&t0, &t2)      // 17. Y3 = t0 + t2
	y3.Subtract(&x3, &y3) // 18. Y3 = X3 - Y3
	x3.Add(&t0, &t0)      // 19. X3 = t0 + t0
	t0.Add(&x3, &t0)      // 20. t0 = X3 + t0
	t2.Multiply(&b3, &t2) // 21. t2 = b3 * t2
	z3.Add(&t1, &t2)      // 22. Z3 = t1 + t2
	t1.Subtract(&t1, &t2) // 23. t1 = t1 - t2
	y3.Multiply(&b3, &y3) // 24. Y3 = b3 * Y3
	x3.Multiply(&t4, &y3) // 25. X3 = t4 * Y3
	t2.Multiply(&t3, &t1) // 26. t2 = t3 * t1
	x3.Subtract(&t2, &x3) // 27. X3 = t2 - X3
	y3.Multiply(&y3, &t0) // 28. Y3 = Y3 * t0
	t1.Multiply(&t1, &z3) // 29. t1 = t1 * Z3
	y3.Add(&t1, &y3)      // 30. Y3 = t1 + Y3
	t0.Multiply(&t0, &t3) // 31. t0 = t0 * t3
	z3.Multiply(&z3, &t4) // 32. Z3 = Z3 * t4
	z3.Add(&z3, &t0)      // 33. Z3 = Z3 + t0

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)

	return v
}

func (v *Point[M]) doubleComplete(p *Point[M]) *Point[M] {
	var (
		b3         field.Element[M]
		t0, t1, t2 field.Element[M]
		x3, y3, z3 field.Element[M]
		x, y, z    = &p.x, &p.y, &p.z
	)
	b3.SetUint64(curveB3)

	t0.Square(y)          // 1. t0 = Y * Y
	z3.Add(&t0, &t0)      // 2. Z3 = t0 + t0
	z3.Add(&z3, &z3)      // 3. Z3 = Z3 + Z3
	z3.Add(&z3, &z3)      // 4. Z3 = Z3 + Z3
	t1.Multiply(y, z)     // 5. t1 = Y * Z
	t2.Square(z)          // 6. t2 = Z * Z
	t2.Multiply(&b3, &t2) // 7. t2 = b3 * t2
	x3.Multiply(&t2, &z3) // 8. X3 = t2 * Z3
	y3.Add(&t0, &t2)      // 9. Y3 = t0 + t2
	z3.Multiply(&t1, &z3) // 10. Z3 = t1 * Z3
	t1.Add(&t2, &t2)      // 11. t1 = t2 + t2
	t2.Add(&t1, &t2)      // 12. t2 = t1 + t2
	t0.Subtract(&t0, &t2) // 13. t0 = t0 - t2
	y3.Multiply(&t0, &y3) // 14. Y3 = t0 * Y3
	y3.Add(&x3, &y3)      // 15. Y3 = X3 + Y3
	t1.Multiply(x, y)     // 16. t1 = X * Y
	x3.Multiply(&t0, &t1) // 17. X3 = t0 * t1
	x3.Add(&x3, &x3)      // 18. X3 = X3 + X3

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)

	return v
}
