package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_AllPresent(t *testing.T) {
	text := `Jane Doe
Email: jane.doe@example.com
Phone: 1234567890
Seattle, WA
linkedin.com/in/janedoe`

	info := Contact(text)

	assert.True(t, info.HasEmail)
	assert.True(t, info.HasPhone)
	assert.True(t, info.HasSocial)
	assert.True(t, info.HasLocation)
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestContact_FormattedPhone(t *testing.T) {
	info := Contact("call 555-867-5309")

	assert.True(t, info.HasPhone)
}

func TestContact_NonePresent(t *testing.T) {
	info := Contact("experienced backend developer")

	assert.False(t, info.HasEmail)
	assert.False(t, info.HasPhone)
	assert.False(t, info.HasSocial)
	assert.False(t, info.HasLocation)
}

func TestContact_ShortDigitRunIsNotPhone(t *testing.T) {
	info := Contact("shipped 123456 units")

	assert.False(t, info.HasPhone)
}

func TestContact_SingleWordName(t *testing.T) {
	info := Contact("Cher\nperformer since 1965")

	assert.Equal(t, "Cher", info.Name)
}

func TestContact_EmptyText(t *testing.T) {
	info := Contact("")

	assert.Equal(t, "", info.Name)
	assert.False(t, info.HasEmail)
}
