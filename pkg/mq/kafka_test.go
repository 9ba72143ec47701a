package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic(t *testing.T) {
	assert.Equal(t, "rating.created", Topic("", "rating.created"))
	assert.Equal(t, "poseidon.rating.created", Topic("poseidon", "rating.created"))
	assert.Equal(t, "poseidon.rating.created", Topic("poseidon.", "rating.created"))
}

func TestLogPublisher(t *testing.T) {
	var p Publisher = LogPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "user.created", "jdoe", map[string]string{"username": "jdoe"}))
}
