package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The surface is the set of "standard ops" a radiance-field model needs:
// linear transforms, elementwise math and activations, concatenation and
// splitting along an axis.
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Matrix operations
	// For 2D tensors: [M, K] @ [K, N] -> [M, N]
	MatMul(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar float32) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor // exponential
	Sin(x *RawTensor) *RawTensor // sine
	Cos(x *RawTensor) *RawTensor // cosine

	// Activation functions (element-wise)
	ReLU(x *RawTensor) *RawTensor     // max(0, x)
	Sigmoid(x *RawTensor) *RawTensor  // 1 / (1 + exp(-x))
	Softplus(x *RawTensor) *RawTensor // log(1 + exp(x))

	// Manipulation operations
	Cat(tensors []*RawTensor, dim int) *RawTensor          // concatenate along dimension
	Split(x *RawTensor, sizes []int, dim int) []*RawTensor // split into parts of the given sizes

	// Metadata
	Name() string
}
