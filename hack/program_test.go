package hack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramWriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Codes: []Code{0x0002, 0xEC10, 0x8000}}

	var buf bytes.Buffer
	n, err := prog.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)

	want := "0000000000000010\n" +
		"1110110000010000\n" +
		"1000000000000000\n"
	assert.Equal(want, buf.String())
}

func TestProgramWriteToEmpty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}

	var buf bytes.Buffer
	n, err := prog.WriteTo(&buf)
	assert.NoError(err)
	assert.Equal(int64(0), n)
	assert.Equal(0, buf.Len())
}

func TestProgramWords(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Codes: []Code{0x0001, 0x0002, 0x0003}}

	var addresses []int
	for address, code := range prog.Words() {
		assert.Equal(Code(address+1), code)
		addresses = append(addresses, address)
	}

	assert.Equal([]int{0, 1, 2}, addresses)
}
