package crud_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/justtrackio/crudgen/pkg/appctx"
	"github.com/justtrackio/crudgen/pkg/cfg"
	"github.com/justtrackio/crudgen/pkg/clock"
	"github.com/justtrackio/crudgen/pkg/db-repo"
	dbRepoMocks "github.com/justtrackio/crudgen/pkg/db-repo/mocks"
	"github.com/justtrackio/crudgen/pkg/httpserver"
	"github.com/justtrackio/crudgen/pkg/httpserver/crud"
	"github.com/justtrackio/crudgen/pkg/log"
	logMocks "github.com/justtrackio/crudgen/pkg/log/mocks"
	uuidGen "github.com/justtrackio/crudgen/pkg/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SidekickCreate struct {
	Name   string `json:"name" binding:"required"`
	Mentor string `json:"mentor"`
}

type SidekickPublic struct {
	db_repo.Uuid
	SidekickCreate
}

type Sidekick struct {
	SidekickPublic
	db_repo.Timestamps
}

func (s *Sidekick) TableName() string {
	return "sidekick"
}

func (s *Sidekick) FromCreate(input SidekickCreate) {
	s.SidekickCreate = input
}

func (s *Sidekick) FromPublic(input SidekickPublic) {
	s.SidekickCreate = input.SidekickCreate
}

func (s *Sidekick) ToPublic() SidekickPublic {
	return s.SidekickPublic
}

const robinId = "01890a5d-ac96-774b-bcce-b302099a8057"

func robin() *Sidekick {
	return &Sidekick{
		SidekickPublic: SidekickPublic{
			Uuid:           db_repo.Uuid{Id: uuid.MustParse(robinId)},
			SidekickCreate: SidekickCreate{Name: "Robin", Mentor: "Batman"},
		},
	}
}

type (
	sidekickService  = dbRepoMocks.RecordService[SidekickCreate, SidekickPublic, *Sidekick]
	sidekickEndpoint = crud.EndpointConfig[SidekickCreate, SidekickPublic, Sidekick, *Sidekick]
)

type crudTestSuite struct {
	suite.Suite

	logger   log.Logger
	sessions *dbRepoMocks.SessionProvider
	session  *dbRepoMocks.Session
	service  *sidekickService
	endpoint sidekickEndpoint
}

func TestCrudTestSuite(t *testing.T) {
	suite.Run(t, new(crudTestSuite))
}

func (s *crudTestSuite) SetupTest() {
	s.logger = logMocks.NewLoggerMock(logMocks.WithMockAll)
	s.sessions = dbRepoMocks.NewSessionProvider(s.T())
	s.session = dbRepoMocks.NewSession(s.T())
	s.service = dbRepoMocks.NewRecordService[SidekickCreate, SidekickPublic, *Sidekick](s.T())

	s.endpoint = sidekickEndpoint{
		Name:     "sidekick",
		Path:     "/sidekick",
		Sessions: s.sessions,
		ServiceFactory: func(session db_repo.Session) db_repo.RecordService[SidekickCreate, SidekickPublic, *Sidekick] {
			s.Same(s.session, session)

			return s.service
		},
	}
}

// expectSession expects one session per request. Only successful operations commit, everything
// else is rolled back by closing the session.
func (s *crudTestSuite) expectSession(commit bool) {
	s.sessions.EXPECT().Begin(mock.Anything).Return(s.session, nil).Once()
	s.session.EXPECT().Close().Return(nil).Once()

	if commit {
		s.session.EXPECT().Commit().Return(nil).Once()
	}
}

func (s *crudTestSuite) TestCreate() {
	s.expectSession(true)
	s.service.EXPECT().Create(mock.Anything, SidekickCreate{Name: "Robin", Mentor: "Batman"}).Return(robin(), nil)

	handler := crud.NewCreateHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodPost, "/sidekick", "/sidekick", `{"name":"Robin","mentor":"Batman"}`, handler)

	s.Equal(http.StatusCreated, response.Code)
	s.JSONEq(fmt.Sprintf(`{"id":"%s","name":"Robin","mentor":"Batman"}`, robinId), response.Body.String())
}

func (s *crudTestSuite) TestCreate_ValidationFails() {
	handler := crud.NewCreateHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodPost, "/sidekick", "/sidekick", `{"mentor":"Batman"}`, handler)

	s.Equal(http.StatusBadRequest, response.Code)
}

func (s *crudTestSuite) TestCreate_StorageError() {
	s.expectSession(false)
	s.service.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, db_repo.NewStorageError(db_repo.Create, "sidekick", fmt.Errorf("disk full")))

	handler := crud.NewCreateHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodPost, "/sidekick", "/sidekick", `{"name":"Robin"}`, handler)

	s.Equal(http.StatusInternalServerError, response.Code)
	s.JSONEq(`{"err":"can not create model of type sidekick: disk full"}`, response.Body.String())
}

func (s *crudTestSuite) TestList() {
	s.expectSession(true)
	s.service.EXPECT().List(mock.Anything).Return([]*Sidekick{robin()}, nil)

	handler := crud.NewListHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick", "/sidekick", "", handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(fmt.Sprintf(`[{"id":"%s","name":"Robin","mentor":"Batman"}]`, robinId), response.Body.String())
}

func (s *crudTestSuite) TestList_Empty() {
	s.expectSession(true)
	s.service.EXPECT().List(mock.Anything).Return([]*Sidekick{}, nil)

	handler := crud.NewListHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick", "/sidekick", "", handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(`[]`, response.Body.String())
}

func (s *crudTestSuite) TestRead() {
	s.expectSession(true)
	s.service.EXPECT().Get(mock.Anything, uuid.MustParse(robinId)).Return(robin(), true, nil)

	handler := crud.NewReadHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick/:id", "/sidekick/"+robinId, "", handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(fmt.Sprintf(`{"id":"%s","name":"Robin","mentor":"Batman"}`, robinId), response.Body.String())
}

func (s *crudTestSuite) TestRead_NotFound() {
	s.expectSession(false)
	s.service.EXPECT().Get(mock.Anything, uuid.Nil).Return(nil, false, nil)

	handler := crud.NewReadHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick/:id", "/sidekick/"+uuid.Nil.String(), "", handler)

	s.Equal(http.StatusNotFound, response.Code)
	s.JSONEq(`{"detail":"Model not found"}`, response.Body.String())
}

func (s *crudTestSuite) TestRead_Canceled() {
	s.expectSession(false)
	s.service.EXPECT().Get(mock.Anything, uuid.MustParse(robinId)).Return(nil, false, db_repo.NewStorageError(db_repo.Read, "sidekick", context.Canceled))

	handler := crud.NewReadHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick/:id", "/sidekick/"+robinId, "", handler)

	s.Equal(httpserver.HttpStatusClientWentAway, response.Code)
}

func (s *crudTestSuite) TestRead_UpperCaseId() {
	s.expectSession(true)
	s.service.EXPECT().Get(mock.Anything, uuid.MustParse(robinId)).Return(robin(), true, nil)

	handler := crud.NewReadHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick/:id", "/sidekick/"+strings.ToUpper(robinId), "", handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(fmt.Sprintf(`{"id":"%s","name":"Robin","mentor":"Batman"}`, robinId), response.Body.String())
}

func (s *crudTestSuite) TestRead_InvalidId() {
	handler := crud.NewReadHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick/:id", "/sidekick/robin", "", handler)

	s.Equal(http.StatusBadRequest, response.Code)
	s.JSONEq(`{"err":"can not parse id robin: invalid UUID length: 5"}`, response.Body.String())
}

func (s *crudTestSuite) TestUpdate() {
	updated := robin()
	updated.Mentor = "Nightwing"

	s.expectSession(true)
	s.service.EXPECT().Update(mock.Anything, updated.ToPublic()).Return(updated, nil)

	handler := crud.NewUpdateHandler(s.logger, s.endpoint)
	body := fmt.Sprintf(`{"id":"%s","name":"Robin","mentor":"Nightwing"}`, robinId)
	response := httpserver.HttpTest(http.MethodPatch, "/sidekick", "/sidekick", body, handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(body, response.Body.String())
}

func (s *crudTestSuite) TestUpdate_MissingId() {
	handler := crud.NewUpdateHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodPatch, "/sidekick", "/sidekick", `{"name":"Robin"}`, handler)

	s.Equal(http.StatusBadRequest, response.Code)
}

func (s *crudTestSuite) TestUpdate_NotFound() {
	s.expectSession(false)
	s.service.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, db_repo.NewRecordNotFoundError(uuid.MustParse(robinId), "sidekick", gorm.ErrRecordNotFound))

	handler := crud.NewUpdateHandler(s.logger, s.endpoint)
	body := fmt.Sprintf(`{"id":"%s","name":"Robin"}`, robinId)
	response := httpserver.HttpTest(http.MethodPatch, "/sidekick", "/sidekick", body, handler)

	s.Equal(http.StatusNotFound, response.Code)
	s.JSONEq(`{"detail":"Model not found"}`, response.Body.String())
}

func (s *crudTestSuite) TestDelete() {
	s.expectSession(true)
	s.service.EXPECT().Delete(mock.Anything, uuid.MustParse(robinId)).Return(robin(), nil)

	handler := crud.NewDeleteHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodDelete, "/sidekick/:id", "/sidekick/"+robinId, "", handler)

	s.Equal(http.StatusOK, response.Code)
	s.JSONEq(fmt.Sprintf(`{"id":"%s","name":"Robin","mentor":"Batman"}`, robinId), response.Body.String())
}

func (s *crudTestSuite) TestDelete_UpperCaseId() {
	s.expectSession(true)
	s.service.EXPECT().Delete(mock.Anything, uuid.MustParse(robinId)).Return(robin(), nil)

	handler := crud.NewDeleteHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodDelete, "/sidekick/:id", "/sidekick/"+strings.ToUpper(robinId), "", handler)

	s.Equal(http.StatusOK, response.Code)
}

func (s *crudTestSuite) TestDelete_InvalidId() {
	handler := crud.NewDeleteHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodDelete, "/sidekick/:id", "/sidekick/robin", "", handler)

	s.Equal(http.StatusBadRequest, response.Code)
}

func (s *crudTestSuite) TestDelete_NotFound() {
	s.expectSession(false)
	s.service.EXPECT().Delete(mock.Anything, uuid.MustParse(robinId)).Return(nil, db_repo.NewRecordNotFoundError(uuid.MustParse(robinId), "sidekick", gorm.ErrRecordNotFound))

	handler := crud.NewDeleteHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodDelete, "/sidekick/:id", "/sidekick/"+robinId, "", handler)

	s.Equal(http.StatusNotFound, response.Code)
	s.JSONEq(`{"detail":"Model not found"}`, response.Body.String())
}

func (s *crudTestSuite) TestBeginFails() {
	s.sessions.EXPECT().Begin(mock.Anything).Return(nil, db_repo.NewStorageError("begin session", "", fmt.Errorf("too many connections")))

	handler := crud.NewListHandler(s.logger, s.endpoint)
	response := httpserver.HttpTest(http.MethodGet, "/sidekick", "/sidekick", "", handler)

	s.Equal(http.StatusInternalServerError, response.Code)
	s.JSONEq(`{"err":"can not begin session: too many connections"}`, response.Body.String())
}

func (s *crudTestSuite) TestAddCrudHandlers() {
	d := &httpserver.Definitions{}
	crud.AddCrudHandlers(s.logger, d, s.endpoint)

	s.Equal([]httpserver.HandlerMetadata{
		{Method: http.MethodPost, Path: "/sidekick"},
		{Method: http.MethodGet, Path: "/sidekick"},
		{Method: http.MethodGet, Path: "/sidekick/:id"},
		{Method: http.MethodPatch, Path: "/sidekick"},
		{Method: http.MethodDelete, Path: "/sidekick/:id"},
	}, d.Routes())
}

func (s *crudTestSuite) TestNewEndpointConfig() {
	appCtx := appctx.NewWithInterfaces(cfg.New(), s.logger, clock.NewFakeClock(), uuidGen.New(), s.sessions)
	endpoint := crud.NewEndpointConfig[SidekickCreate, SidekickPublic, Sidekick](appCtx, "TeamSidekick")

	s.Equal("TeamSidekick", endpoint.Name)
	s.Equal("/team-sidekick", endpoint.Path)
	s.Equal("/team-sidekick/:id", endpoint.IdPath())
	s.Same(s.sessions, endpoint.Sessions)

	s.session.EXPECT().Orm().Return(&gorm.DB{})
	service := endpoint.ServiceFactory(s.session)

	s.IsType(&db_repo.Service[SidekickCreate, SidekickPublic, Sidekick, *Sidekick]{}, service)
}
