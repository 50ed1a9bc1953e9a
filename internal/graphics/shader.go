package graphics

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// NewShaderFromSource compiles a vertex and a fragment shader from the given
// source strings and links them into a program. Compile and link failures
// are reported on standard output and do not abort: a broken program draws
// a blank or garbage frame, which is acceptable for a diagnostic build.
func NewShaderFromSource(vertexSrc, fragmentSrc string) *Shader {
	vertexShader := compileShader(vertexSrc, gl.VERTEX_SHADER, "VERTEX")
	fragmentShader := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "FRAGMENT")

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		fmt.Printf("ERROR::SHADER::PROGRAM::LINKING::FAILED\n%s\n", programInfoLog(program))
	}

	// The shader objects are linked into the program and no longer needed
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return &Shader{ID: program}
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program object
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func compileShader(source string, shaderType uint32, stage string) uint32 {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		fmt.Printf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s\n", stage, shaderInfoLog(shader))
	}
	return shader
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

	return strings.TrimRight(log, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

	return strings.TrimRight(log, "\x00")
}
