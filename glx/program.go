package glx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles and links a vertex/fragment shader pair and
// returns the program name. Shader objects are deleted after linking.
//
// This lives on the consumer side of the scene layer; objects only carry
// the resulting handle.
func CompileProgram(vertex, fragment string) (Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prg := gl.CreateProgram()
	gl.AttachShader(prg, vs)
	gl.AttachShader(prg, fs)
	gl.LinkProgram(prg)

	var status int32
	gl.GetProgramiv(prg, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		log := programInfoLog(prg)
		gl.DeleteProgram(prg)
		return 0, fmt.Errorf("linker error: %v", log)
	}

	return Program(prg), nil
}

func compileShader(xtype uint32, source string) (uint32, error) {
	shader := gl.CreateShader(xtype)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.TRUE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func programInfoLog(prg uint32) string {
	var length int32
	gl.GetProgramiv(prg, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(prg, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
