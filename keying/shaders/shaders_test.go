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

package shaders_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jetsetilly/chromakey/keying/shaders"
	"github.com/jetsetilly/chromakey/test"
)

func TestVersion(t *testing.T) {
	directive := []byte(fmt.Sprintf("#version %s\n", shaders.Version))
	test.ExpectSuccess(t, bytes.HasPrefix(shaders.KeyingVertexShader, directive))
	test.ExpectSuccess(t, bytes.HasPrefix(shaders.KeyingFragShader, directive))
}

// the renderer looks up these names so they must be present in the source
func TestNames(t *testing.T) {
	test.ExpectSuccess(t, bytes.Contains(shaders.KeyingVertexShader, []byte("in vec2 Position;")))
	for _, u := range []string{"Texture", "Dominant", "Similarity", "Blend", "Despill"} {
		test.ExpectSuccess(t, bytes.Contains(shaders.KeyingFragShader, []byte(" "+u+";")), u)
	}
}
