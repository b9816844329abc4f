package shader

import (
	"encoding/binary"
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Magic is the first word of every SPIR-V module
const Magic uint32 = 0x07230203

// ErrInvalidSPIRV is returned when a shader asset is not a well-formed SPIR-V binary
var ErrInvalidSPIRV = errors.New("invalid SPIR-V")

// ModuleCreator turns SPIR-V words into a shader module on a logical device
type ModuleCreator interface {
	CreateShaderModule(code []uint32) (core1_0.ShaderModule, error)
}

// ReadSPIRV loads a SPIR-V binary from an asset filesystem and returns its words
func ReadSPIRV(assets fs.FS, path string) ([]uint32, error) {
	data, err := fs.ReadFile(assets, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read shader %s", path)
	}

	return Decode(data)
}

// Decode converts a SPIR-V binary into words. Binaries written on a big-endian host are
// accepted and byte-swapped.
func Decode(data []byte) ([]uint32, error) {
	if len(data) == 0 || len(data)%4 != 0 {
		return nil, errors.Wrapf(ErrInvalidSPIRV, "binary size %d is not a positive multiple of 4", len(data))
	}

	var order binary.ByteOrder = binary.LittleEndian
	switch Magic {
	case binary.LittleEndian.Uint32(data):
	case binary.BigEndian.Uint32(data):
		order = binary.BigEndian
	default:
		return nil, errors.Wrapf(ErrInvalidSPIRV, "bad magic number %#08x", binary.LittleEndian.Uint32(data))
	}

	code := make([]uint32, len(data)/4)
	for i := range code {
		code[i] = order.Uint32(data[i*4:])
	}

	return code, nil
}

// LoadModule reads a SPIR-V asset and creates a shader module from it
func LoadModule(creator ModuleCreator, assets fs.FS, path string) (core1_0.ShaderModule, error) {
	code, err := ReadSPIRV(assets, path)
	if err != nil {
		return core1_0.ShaderModule{}, err
	}

	module, err := creator.CreateShaderModule(code)
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(err, "failed to create shader module from %s", path)
	}

	return module, nil
}
