package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userboard/internal/features/user/models"
)

func TestUserWireFormat(t *testing.T) {
	payload, err := json.Marshal(models.User{ID: 1, Email: "alice@example.com"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"email":"alice@example.com","name":null}`, string(payload))
}

func TestPostWireFormat(t *testing.T) {
	payload, err := json.Marshal(models.Post{ID: 2, Title: "hello", AuthorID: 1})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":2,"title":"hello","content":null,"published":false,"authorId":1}`, string(payload))
}

func TestAllListsModelsInDependencyOrder(t *testing.T) {
	all := models.All()
	require.Len(t, all, 2)
	assert.IsType(t, &models.User{}, all[0])
	assert.IsType(t, &models.Post{}, all[1])
}
