package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("NOTES_TEST_SECRET", "s3cret")

	conf, err := Parse([]byte(`
app:
  env: test
database:
  driver: postgres
  host: db
  port: 5432
  user: notes
  password: pw
  name: notes
jwt:
  secret: ${NOTES_TEST_SECRET}
  access_ttl: 60
seed:
  categories:
    - name: Work
      color: "#112233"
`))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, "s3cret", conf.Jwt.Secret)
	assert.Equal(t, time.Minute, conf.Jwt.AccessExpire())
	assert.Equal(t, DriverPostgres, conf.Database.Driver)
	require.Len(t, conf.Seed.Categories, 1)
	assert.Equal(t, "#112233", conf.Seed.Categories[0].Color)

	// sections missing from the file keep their defaults
	assert.Equal(t, 8000, conf.Server.Http)
	assert.Equal(t, "127.0.0.1:6379", conf.Redis.Addr())
	assert.Equal(t, 24*time.Hour, conf.Jwt.RefreshExpire())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("app: ["))
	assert.Error(t, err)
}

func TestDatabase_Dsn(t *testing.T) {
	cases := []struct {
		name string
		db   Database
		want string
	}{
		{"mysql default params", Database{Driver: DriverMySQL, Host: "h", Port: 3306, User: "u", Password: "p", Name: "n"},
			"u:p@tcp(h:3306)/n?charset=utf8mb4&parseTime=True&loc=Local"},
		{"postgres", Database{Driver: DriverPostgres, Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", Params: "sslmode=disable"},
			"host=h port=5432 user=u password=p dbname=n sslmode=disable"},
		{"sqlite", Database{Driver: DriverSQLite, Name: "notes.db", Params: "_pragma=foreign_keys(1)"},
			"notes.db?_pragma=foreign_keys(1)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.db.Dsn())
		})
	}
}
