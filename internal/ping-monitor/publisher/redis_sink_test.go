package publisher

import (
	"URL_Ping_Monitor/internal/ping-monitor/model"
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const testStatusChannel = "ping-monitor:status"

func TestRedisSink_Send(t *testing.T) {
	payload := `{"action":"statusUpdate","url":"https://example.com","status":"offline"}`
	testCases := []struct {
		name        string
		mockSetup   func(mock redismock.ClientMock)
		expectError bool
	}{
		{
			name: "Success with no receivers",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectPublish(testStatusChannel, payload).SetVal(0)
			},
		},
		{
			name: "Success with receivers",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectPublish(testStatusChannel, payload).SetVal(2)
			},
		},
		{
			name: "Error - Redis returns an error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectPublish(testStatusChannel, payload).SetErr(errors.New("redis connection error"))
			},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			sink := NewRedisSink(db, testStatusChannel)
			tc.mockSetup(mock)

			err := sink.Send(context.Background(), model.NewStatusUpdate("https://example.com", model.StatusOffline))
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
