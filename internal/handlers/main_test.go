package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsline/internal/db"
	"newsline/internal/models"
	"newsline/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRouter gives each test its own seeded in-memory store and a fully
// routed engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second connection would see a different empty :memory: database.
	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(g))
	db.DB = g
	seed(t, g)

	r := gin.New()
	router.RegisterRoutes(r)
	return r
}

func seed(t *testing.T, g *gorm.DB) {
	t.Helper()
	at := func(day, hour int) time.Time {
		return time.Date(2020, time.July, day, hour, 0, 0, 0, time.UTC)
	}

	topics := []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
	users := []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://avatars.example/butter_bridge.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars.example/icellusedkars.jpg"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars.example/rogersop.jpg"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://avatars.example/lurker.jpg"},
	}
	articles := []models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", CreatedAt: at(9, 21), Votes: 100,
			ArticleImgURL: "https://images.example/700/700.jpg"},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", CreatedAt: at(16, 10), Votes: 0,
			ArticleImgURL: "https://images.example/700/701.jpg"},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", CreatedAt: at(20, 8), Votes: 0,
			ArticleImgURL: "https://images.example/700/702.jpg"},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
			Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(6, 12), Votes: 0,
			ArticleImgURL: "https://images.example/700/703.jpg"},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us", CreatedAt: at(11, 15), Votes: 0,
			ArticleImgURL: "https://images.example/700/704.jpg"},
	}

	// Eleven comments on article 1, two on article 3.
	comments := []models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!", Votes: 16, CreatedAt: at(1, 1)},
		{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "The beautiful thing about treasure is that it exists.", Votes: 14, CreatedAt: at(1, 2)},
		{CommentID: 3, ArticleID: 1, Author: "rogersop", Body: "Replacing the quiet elegance of the dark suit", Votes: 100, CreatedAt: at(1, 3)},
		{CommentID: 4, ArticleID: 1, Author: "lurker", Body: "I carry a log about.", Votes: -100, CreatedAt: at(1, 4)},
		{CommentID: 5, ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", Votes: 0, CreatedAt: at(1, 5)},
		{CommentID: 6, ArticleID: 1, Author: "butter_bridge", Body: "I hate streaming eyes even more", Votes: 0, CreatedAt: at(1, 6)},
		{CommentID: 7, ArticleID: 1, Author: "rogersop", Body: "Lobster pot", Votes: 0, CreatedAt: at(1, 7)},
		{CommentID: 8, ArticleID: 1, Author: "lurker", Body: "Delicious crackerbreads", Votes: 0, CreatedAt: at(1, 8)},
		{CommentID: 9, ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", Votes: 0, CreatedAt: at(1, 9)},
		{CommentID: 10, ArticleID: 1, Author: "butter_bridge", Body: "git push origin master", Votes: 0, CreatedAt: at(1, 10)},
		{CommentID: 11, ArticleID: 1, Author: "lurker", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: at(1, 11)},
		{CommentID: 12, ArticleID: 3, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 1, CreatedAt: at(2, 1)},
		{CommentID: 13, ArticleID: 3, Author: "icellusedkars", Body: "Fruit pastilles", Votes: 0, CreatedAt: at(2, 2)},
	}

	require.NoError(t, g.Create(&topics).Error)
	require.NoError(t, g.Create(&users).Error)
	require.NoError(t, g.Create(&articles).Error)
	require.NoError(t, g.Create(&comments).Error)
}

// performRequest issues a request against the engine. A string body is sent
// raw, anything else is marshalled to JSON.
func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, _ := json.Marshal(b)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func errMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	decodeBody(t, w, &body)
	return body.Msg
}
