package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrProgramLink   = errors.New("program link failed")
)

func stringFromShaderFile(shaderFilePath string) (string, error) {
	content, err := os.ReadFile(shaderFilePath)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	return string(content), nil
}

func loadShader(shaderFilePath string, shaderType uint32) (uint32, error) {
	source, err := stringFromShaderFile(shaderFilePath)
	if err != nil {
		return 0, err
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s: %s", ErrShaderCompile, shaderFilePath, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// newProgram compiles and links a vertex/fragment pair read from disk.
func newProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexShader, err := loadShader(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := loadShader(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("%w: %s", ErrProgramLink, strings.TrimRight(log, "\x00"))
	}

	logger().Debug("shader program linked", "vertex", vertexPath, "fragment", fragmentPath, "program", prog)
	return prog, nil
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
