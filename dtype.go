package tensor

import (
	"math"
	"reflect"
)

// Num is the constraint for supported tensor element types.
// It covers the ten numeric types the conversion table in cast.go knows
// about. Derived types are admitted (~), which is how float16.Float16
// (a defined uint16) participates as a storage format.
type Num interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DataType is runtime type information for tensor elements.
type DataType int

// Supported element data types.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsUnsigned reports whether the data type is an unsigned integer type.
func (dt DataType) IsUnsigned() bool {
	switch dt {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	default:
		return false
	}
}

// minInt and maxInt return the representable range for signed integer
// data types; maxUint for unsigned ones. They drive the overflow checks
// in the cast rules.
func (dt DataType) minInt() int64 {
	switch dt {
	case Int8:
		return math.MinInt8
	case Int16:
		return math.MinInt16
	case Int32:
		return math.MinInt32
	case Int64:
		return math.MinInt64
	default:
		panic("minInt: not a signed integer type")
	}
}

func (dt DataType) maxInt() int64 {
	switch dt {
	case Int8:
		return math.MaxInt8
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	case Int64:
		return math.MaxInt64
	default:
		panic("maxInt: not a signed integer type")
	}
}

func (dt DataType) maxUint() uint64 {
	switch dt {
	case Uint8:
		return math.MaxUint8
	case Uint16:
		return math.MaxUint16
	case Uint32:
		return math.MaxUint32
	case Uint64:
		return math.MaxUint64
	default:
		panic("maxUint: not an unsigned integer type")
	}
}

// dataTypeOf infers the DataType of the element type T.
// It goes through reflect.Kind so that derived types resolve to their
// underlying representation.
func dataTypeOf[T Num]() DataType {
	var v T
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
