// This file is part of Chromakey.
//
// Chromakey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chromakey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chromakey.  If not, see <https://www.gnu.org/licenses/>.

package renderer

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/chromakey/curated"
)

// program handles and the locations of attributes and uniforms
type program struct {
	handle uint32

	// vertex
	position int32

	// fragment
	texture    int32 // uniform
	dominant   int32 // uniform
	similarity int32 // uniform
	blend      int32 // uniform
	despill    int32 // uniform
}

func (prg *program) destroy() {
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}

func (prg *program) create(vertProgram string, fragProgram string) error {
	prg.destroy()

	vertHandle, err := compile(gl.VERTEX_SHADER, vertProgram)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compile(gl.FRAGMENT_SHADER, fragProgram)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fragHandle)

	prg.handle = gl.CreateProgram()
	gl.AttachShader(prg.handle, vertHandle)
	gl.AttachShader(prg.handle, fragHandle)
	gl.LinkProgram(prg.handle)

	if log := linkError(prg.handle); log != "" {
		prg.destroy()
		return curated.Errorf(ProgramLinkFailure, log)
	}

	prg.position = gl.GetAttribLocation(prg.handle, gl.Str("Position"+"\x00"))
	prg.texture = gl.GetUniformLocation(prg.handle, gl.Str("Texture"+"\x00"))
	prg.dominant = gl.GetUniformLocation(prg.handle, gl.Str("Dominant"+"\x00"))
	prg.similarity = gl.GetUniformLocation(prg.handle, gl.Str("Similarity"+"\x00"))
	prg.blend = gl.GetUniformLocation(prg.handle, gl.Str("Blend"+"\x00"))
	prg.despill = gl.GetUniformLocation(prg.handle, gl.Str("Despill"+"\x00"))

	return nil
}

func stage(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// compile shader source. the shader is deleted if compilation fails
func compile(kind uint32, source string) (uint32, error) {
	handle := gl.CreateShader(kind)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)
	if log := compileError(handle); log != "" {
		gl.DeleteShader(handle)
		return 0, curated.Errorf(ShaderCompileFailure, stage(kind), log)
	}

	return handle, nil
}

func compileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled != 0 {
		return ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "no info log"
	}

	// the log length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func linkError(prog uint32) string {
	var isLinked int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &isLinked)
	if isLinked != 0 {
		return ""
	}

	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "no info log"
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
