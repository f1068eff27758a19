package caller

import (
	"runtime"
	"strings"
)

// Name returns the name of the function or method that called the
// function which invoked Name. With an offset it walks further up the
// stack:
//
//	func Bar() {
//		fmt.Println(caller.Name()) // Bar
//	}
//
//	func Foo() {
//		Bar()
//	}
//
//	func Bar() {
//		fmt.Println(caller.Name(1)) // Foo
//	}
func Name(offsetOpt ...int) string {
	offset := 1
	if len(offsetOpt) > 0 {
		offset += offsetOpt[0]
	}

	pc, _, _, ok := runtime.Caller(offset)
	if !ok {
		return ""
	}

	details := runtime.FuncForPC(pc)
	if details == nil {
		return ""
	}

	parts := strings.Split(details.Name(), ".")

	// calls from closures add a trailing "func1", "func2", ... element
	if len(parts) > 0 && strings.HasPrefix(parts[len(parts)-1], "func") {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return ""
	}

	// a method, e.g. ["github.com/tymbaca/localmr/mapreduce", "(*mapper)", "run"]
	if len(parts) > 2 {
		typeName := strings.Trim(parts[len(parts)-2], "(*)")
		return typeName + "." + parts[len(parts)-1]
	}

	return parts[len(parts)-1]
}
