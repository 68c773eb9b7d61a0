//go:build integration
// +build integration

package tests

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/dynamicsamic/Todo/internal/adapter/db"
	httpadapter "github.com/dynamicsamic/Todo/internal/adapter/http"
	"github.com/dynamicsamic/Todo/internal/adapter/http/handlers"
	"github.com/dynamicsamic/Todo/internal/app/service"
	"github.com/dynamicsamic/Todo/internal/app/validation"
	"github.com/dynamicsamic/Todo/internal/config"
	"github.com/dynamicsamic/Todo/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

// IntegrationSuiteBase runs against a real PostgreSQL database named after
// PG_DB with a _test suffix. It is created on setup and dropped on teardown.
type IntegrationSuiteBase struct {
	suite.Suite

	conf   *config.Config
	DB     *sqlx.DB
	Router *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	conf := config.LoadConfig()
	if !strings.HasSuffix(conf.DbName, "_test") {
		conf.DbName += "_test"
	}
	if name := os.Getenv("PG_TEST_DB"); name != "" {
		conf.DbName = name
	}
	s.conf = conf

	ctx := context.Background()
	if err := dbadapter.EnsureDatabase(ctx, conf); err != nil {
		s.T().Skipf("skipping integration suite: could not reach postgres: %v", err)
	}

	db, err := dbadapter.ConnectDB(conf)
	s.Require().NoError(err)
	s.DB = db
	s.Require().NoError(dbadapter.Migrate(ctx, db, "", dbadapter.MigrateUp))

	location := conf.Location()
	pipeline := validation.NewPipeline(
		validation.WithLocation(location),
		validation.WithMaxPageLimit(conf.MaxPageLimit),
	)
	router := gin.New()
	httpadapter.RegisterRoutes(router, db, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, location),
		Todos:  handlers.NewTodoHandler(service.NewTodoService(dbadapter.NewTodoRepository(db), pipeline), conf.DefaultPageLimit),
		Tasks:  handlers.NewTaskHandler(service.NewTaskService(dbadapter.NewTaskRepository(db), pipeline), conf.DefaultPageLimit),
	})
	s.Router = router
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	ctx := context.Background()
	if s.DB != nil {
		s.Require().NoError(dbadapter.Migrate(ctx, s.DB, "", dbadapter.MigrateDown))
		s.Require().NoError(s.DB.Close())
	}
	if s.conf != nil && strings.HasSuffix(s.conf.DbName, "_test") {
		s.Require().NoError(dbadapter.DropDatabase(ctx, s.conf))
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	s.Require().NoError(dbadapter.CleanupData(context.Background(), s.DB))
}
