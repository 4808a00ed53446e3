package factory

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestUUID(t *testing.T) {
	a, b := UUID(), UUID()
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b)
}

func TestJSONRPCRequest(t *testing.T) {
	req := JSONRPCRequest("bridge/sample", map[string]string{"a": "b"})
	assert.Equal(t, "bridge/sample", req.Method())
	assert.JSONEq(t, `{"a":"b"}`, string(req.Params()))
}

func TestJSONRPCNotification(t *testing.T) {
	req := JSONRPCNotification("bridge/sample", nil)
	assert.Equal(t, "bridge/sample", req.Method())
}

func TestExecuteCommandParams(t *testing.T) {
	params := ExecuteCommandParams("3dviewer.importFile", "file:///a.gltf")
	assert.Equal(t, "3dviewer.importFile", params.Command)
	assert.Equal(t, []interface{}{"file:///a.gltf"}, params.Arguments)
}
