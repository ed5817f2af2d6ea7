package script

import "io"

// Compiler defines the interface for validating scripts before execution.
// It checks syntax and returns a valid script as ExecutableContent.
//
// Example usage:
//
//	comp, _ := compiler.New()
//	executableContent, err := comp.Compile(reader)
//	if err != nil {
//	    // Handle validation error
//	}
//	// Use executableContent for execution
type Compiler interface {
	// Compile checks if a script is valid and returns it as executable content.
	//
	// Parameters:
	//   - scriptReader: A reader over the script content, closed by Compile
	//
	// Returns:
	//   - ExecutableContent: The validated script
	//   - error: Details about validation failures
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
