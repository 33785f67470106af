package screen

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/gones-project/tinynes/nes"
)

// Shaders for a 2D texture.
const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D texture;
  void main(void){
    gl_FragColor = texture2D(texture, vuv);
  }
  ` + "\x00"
)

const (
	tilesPerRow   = 32
	pixelsPerTile = 8
	frameWidth    = tilesPerRow * pixelsPerTile // 256
	frameHeight   = 30 * pixelsPerTile          // 240
)

var vertexPosition = []float32{
	1, 1,
	-1, 1,
	-1, -1,
	1, -1,
}
var vertexUV = []float32{
	1, 0,
	0, 0,
	0, 1,
	1, 1,
}

// compileShader compiles a shader.
func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile a shader: %v\n %v", code, log)
	}
	return shader, nil
}

// newProgram links the 2D texture-blit program.
func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link a program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// GLScreen is a glfw/OpenGL implementation of nes.Screen: it blits the
// delivered background tile list to a texture once per completed frame and
// exposes the window's close request as the quit event the machine loop
// polls.
type GLScreen struct {
	window  *glfw.Window
	program uint32
	audio   *audioStream
}

// NewGLScreen opens a width x height window and compiles the blit program.
// Construction failures are fatal: there is no degraded mode to render
// into.
func NewGLScreen(width, height int) *GLScreen {
	if err := glfw.Init(); err != nil {
		glog.Fatalf("screen: glfw init failed: %v", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "tinynes", nil, nil)
	if err != nil {
		glog.Fatalf("screen: failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalf("screen: gl init failed: %v", err)
	}
	program, err := newProgram()
	if err != nil {
		glog.Fatalf("screen: failed to build shader program: %v", err)
	}
	gl.UseProgram(program)
	audio, err := newAudioStream()
	if err != nil {
		glog.Fatalf("screen: %v", err)
	}
	return &GLScreen{window: window, program: program, audio: audio}
}

// Close stops the audio stream and terminates glfw, releasing the window.
func (s *GLScreen) Close() {
	s.audio.close()
	glfw.Terminate()
}

// RenderBackground paints the delivered tiles into a 256x240 RGBA image,
// uploads it as a texture, and swaps buffers. Tiles arrive in row-major
// order, 32 to a row.
func (s *GLScreen) RenderBackground(tiles []nes.Tile) {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	for i, tile := range tiles {
		tileX := (i % tilesPerRow) * pixelsPerTile
		tileY := (i / tilesPerRow) * pixelsPerTile
		for py := 0; py < pixelsPerTile; py++ {
			for px := 0; px < pixelsPerTile; px++ {
				colorIndex := tile.Palettes[tile.Sprite[py][px]]
				r, g, b := rgb(colorIndex)
				img.Set(tileX+px, tileY+py, rgbaColor{r, g, b})
			}
		}
	}
	updateTexture(s.program, img)
	s.window.SwapBuffers()
	glfw.PollEvents()
}

// PollQuit reports whether the user asked to close the window.
func (s *GLScreen) PollQuit() bool {
	return s.window.ShouldClose()
}

// rgbaColor adapts an opaque RGB triple to image/color.Color.
type rgbaColor struct {
	r, g, b byte
}

func (c rgbaColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, 0xffff
}

// updateTexture uploads image as the bound 2D texture and draws the
// full-screen quad.
func updateTexture(program uint32, img *image.RGBA) {
	var textureId uint32
	gl.GenTextures(1, &textureId)
	gl.BindTexture(gl.TEXTURE_2D, textureId)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	positionLocation := uint32(gl.GetAttribLocation(program, gl.Str("position\x00")))
	uvLocation := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	textureLocation := gl.GetUniformLocation(program, gl.Str("texture\x00"))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(uvLocation)
	gl.Uniform1i(textureLocation, 0)
	gl.VertexAttribPointer(positionLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexPosition))
	gl.VertexAttribPointer(uvLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexUV))
	gl.BindTexture(gl.TEXTURE_2D, textureId)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}
