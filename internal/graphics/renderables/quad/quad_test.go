package quad

import (
	"strings"
	"testing"
)

func TestEmbeddedShaderSources(t *testing.T) {
	for name, src := range map[string]string{"vertex": vertexSource, "fragment": fragmentSource} {
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s shader should target GLSL 330 core, starts with %q", name, firstLine(src))
		}
		if strings.ContainsRune(src, 0) {
			t.Errorf("%s shader source should not be pre-null-terminated", name)
		}
	}

	if !strings.Contains(vertexSource, "layout (location = 0) in vec3 aPos") {
		t.Error("vertex shader should declare a vec3 position attribute at location 0")
	}
	if !strings.Contains(vertexSource, "gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0)") {
		t.Error("vertex shader should pass the attribute straight to clip space")
	}
	if !strings.Contains(fragmentSource, "FragColor = vec4(1.0, 0.0, 0.0, 1.0)") {
		t.Error("fragment shader should write constant opaque red")
	}
}

func TestNewQuadMesh(t *testing.T) {
	q := NewQuad()

	if got := q.mesh.VertexBytes(); got != 48 {
		t.Errorf("quad uploads a 48-byte vertex buffer, got %d", got)
	}
	if got := q.mesh.IndexBytes(); got != 24 {
		t.Errorf("quad uploads a 24-byte index buffer, got %d", got)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
