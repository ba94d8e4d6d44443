package rsalib

// Code is a packed library error code as the error queue hands it out.
type Code uint64

// Function identifiers. Libraries that still record the failing function
// show these names in error strings.
const (
	FuncBNNew = 113 + iota
	FuncRSANew
	FuncSet0Key
	FuncSet0Factors
	FuncSet0CRTParams
	FuncGenerateKeyEx
	FuncGenerateKey
	FuncSetExData
)

var funcNames = map[int]string{
	FuncBNNew:         "BN_new",
	FuncRSANew:        "RSA_new_method",
	FuncSet0Key:       "RSA_set0_key",
	FuncSet0Factors:   "RSA_set0_factors",
	FuncSet0CRTParams: "RSA_set0_crt_params",
	FuncGenerateKeyEx: "RSA_generate_key_ex",
	FuncGenerateKey:   "RSA_generate_key",
	FuncSetExData:     "CRYPTO_set_ex_data",
}

// LibError is the error value returned by library primitives. It carries the
// code that was also pushed onto the queue.
type LibError struct {
	Code Code
}

func (e *LibError) Error() string {
	return ErrorString(e.Code)
}

// failure wraps the code a failing primitive left on the queue. When it left
// nothing, lib/fn/reason is raised in its place.
func failure(c Code, lib, fn, reason int) error {
	if c != 0 {
		return &LibError{Code: c}
	}
	return raise(lib, fn, reason)
}
