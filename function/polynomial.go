package function

import "github.com/roboptim/core-go/matrix"

// Polynomial is a univariate polynomial in Horner form (spec.md §3
// "Polynomial"): n = m = 1, coeffs[i] is the coefficient of x^i. Its
// regularity tags reflect its degree: degree 0 is constant and linear,
// degree 1 is linear, degree 2 is quadratic; every degree is twice
// differentiable.
type Polynomial struct {
	Base
	coeffs []float64 // coeffs[i] * x^i
}

// NewPolynomial builds a polynomial from its coefficients, lowest
// degree first. coeffs must be non-empty.
func NewPolynomial(coeffs []float64, name string) *Polynomial {
	if len(coeffs) == 0 {
		panic("function: Polynomial: at least one coefficient required")
	}
	degree := len(coeffs) - 1
	tags := TagContinuous | TagDifferentiable | TagTwiceDifferentiable | TagPolynomial
	switch {
	case degree == 0:
		tags |= TagConstant | TagLinear
	case degree == 1:
		tags |= TagLinear
	case degree == 2:
		tags |= TagQuadratic
	}
	return &Polynomial{
		Base:   NewBase(1, 1, name, tags, matrix.Dense),
		coeffs: append([]float64(nil), coeffs...),
	}
}

// Degree returns the polynomial's degree (len(coeffs) - 1).
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

func (p *Polynomial) Eval(dst MutableVector, x Vector) error {
	if err := CheckEval(p, dst, x); err != nil {
		return err
	}
	dst.Set(0, p.horner(x.At(0)))
	return nil
}

func (p *Polynomial) horner(x float64) float64 {
	result := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result*x + p.coeffs[i]
	}
	return result
}

func (p *Polynomial) Gradient(dst MutableVector, x Vector, row int) error {
	if err := CheckGradient(p, dst, x, row); err != nil {
		return err
	}
	dst.Set(0, p.derivative1(x.At(0)))
	return nil
}

func (p *Polynomial) derivative1(x float64) float64 {
	if len(p.coeffs) < 2 {
		return 0
	}
	result := 0.0
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		result = result*x + p.coeffs[i]*float64(i)
	}
	return result
}

func (p *Polynomial) Jacobian(dst Builder, x Vector) error {
	return DefaultJacobian(p, dst, x)
}

func (p *Polynomial) Hessian(dst Builder, x Vector, row int) error {
	if err := CheckHessian(p, dst, x, row); err != nil {
		return err
	}
	dst.Set(0, 0, p.derivative2(x.At(0)))
	return nil
}

func (p *Polynomial) derivative2(x float64) float64 {
	if len(p.coeffs) < 3 {
		return 0
	}
	result := 0.0
	for i := len(p.coeffs) - 1; i >= 2; i-- {
		result = result*x + p.coeffs[i]*float64(i)*float64(i-1)
	}
	return result
}
