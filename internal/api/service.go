package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// QuizServiceName is the fully-qualified name of the quiz service.
const QuizServiceName = "hskquiz.v1.QuizService"

const (
	QuizServiceListLevelsProcedure   = "/hskquiz.v1.QuizService/ListLevels"
	QuizServiceStartQuizProcedure    = "/hskquiz.v1.QuizService/StartQuiz"
	QuizServiceSubmitAnswerProcedure = "/hskquiz.v1.QuizService/SubmitAnswer"
	QuizServiceShowNextProcedure     = "/hskquiz.v1.QuizService/ShowNext"
	QuizServiceRestartProcedure      = "/hskquiz.v1.QuizService/Restart"
	QuizServiceGetQuizProcedure      = "/hskquiz.v1.QuizService/GetQuiz"
)

// QuizServiceHandler is implemented by the server.
type QuizServiceHandler interface {
	ListLevels(context.Context, *connect.Request[ListLevelsRequest]) (*connect.Response[ListLevelsResponse], error)
	StartQuiz(context.Context, *connect.Request[StartQuizRequest]) (*connect.Response[QuizResponse], error)
	SubmitAnswer(context.Context, *connect.Request[SubmitAnswerRequest]) (*connect.Response[QuizResponse], error)
	ShowNext(context.Context, *connect.Request[ShowNextRequest]) (*connect.Response[QuizResponse], error)
	Restart(context.Context, *connect.Request[RestartRequest]) (*connect.Response[QuizResponse], error)
	GetQuiz(context.Context, *connect.Request[GetQuizRequest]) (*connect.Response[QuizResponse], error)
}

// NewQuizServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewQuizServiceHandler(svc QuizServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	handlers := map[string]http.Handler{
		QuizServiceListLevelsProcedure:   connect.NewUnaryHandler(QuizServiceListLevelsProcedure, svc.ListLevels, opts...),
		QuizServiceStartQuizProcedure:    connect.NewUnaryHandler(QuizServiceStartQuizProcedure, svc.StartQuiz, opts...),
		QuizServiceSubmitAnswerProcedure: connect.NewUnaryHandler(QuizServiceSubmitAnswerProcedure, svc.SubmitAnswer, opts...),
		QuizServiceShowNextProcedure:     connect.NewUnaryHandler(QuizServiceShowNextProcedure, svc.ShowNext, opts...),
		QuizServiceRestartProcedure:      connect.NewUnaryHandler(QuizServiceRestartProcedure, svc.Restart, opts...),
		QuizServiceGetQuizProcedure:      connect.NewUnaryHandler(QuizServiceGetQuizProcedure, svc.GetQuiz, opts...),
	}
	return "/" + QuizServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

// QuizServiceClient calls the quiz service.
type QuizServiceClient interface {
	ListLevels(context.Context, *connect.Request[ListLevelsRequest]) (*connect.Response[ListLevelsResponse], error)
	StartQuiz(context.Context, *connect.Request[StartQuizRequest]) (*connect.Response[QuizResponse], error)
	SubmitAnswer(context.Context, *connect.Request[SubmitAnswerRequest]) (*connect.Response[QuizResponse], error)
	ShowNext(context.Context, *connect.Request[ShowNextRequest]) (*connect.Response[QuizResponse], error)
	Restart(context.Context, *connect.Request[RestartRequest]) (*connect.Response[QuizResponse], error)
	GetQuiz(context.Context, *connect.Request[GetQuizRequest]) (*connect.Response[QuizResponse], error)
}

type quizServiceClient struct {
	listLevels   *connect.Client[ListLevelsRequest, ListLevelsResponse]
	startQuiz    *connect.Client[StartQuizRequest, QuizResponse]
	submitAnswer *connect.Client[SubmitAnswerRequest, QuizResponse]
	showNext     *connect.Client[ShowNextRequest, QuizResponse]
	restart      *connect.Client[RestartRequest, QuizResponse]
	getQuiz      *connect.Client[GetQuizRequest, QuizResponse]
}

// NewQuizServiceClient builds a client for the service at baseURL, for example http://localhost:8080.
func NewQuizServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) QuizServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &quizServiceClient{
		listLevels:   connect.NewClient[ListLevelsRequest, ListLevelsResponse](httpClient, baseURL+QuizServiceListLevelsProcedure, opts...),
		startQuiz:    connect.NewClient[StartQuizRequest, QuizResponse](httpClient, baseURL+QuizServiceStartQuizProcedure, opts...),
		submitAnswer: connect.NewClient[SubmitAnswerRequest, QuizResponse](httpClient, baseURL+QuizServiceSubmitAnswerProcedure, opts...),
		showNext:     connect.NewClient[ShowNextRequest, QuizResponse](httpClient, baseURL+QuizServiceShowNextProcedure, opts...),
		restart:      connect.NewClient[RestartRequest, QuizResponse](httpClient, baseURL+QuizServiceRestartProcedure, opts...),
		getQuiz:      connect.NewClient[GetQuizRequest, QuizResponse](httpClient, baseURL+QuizServiceGetQuizProcedure, opts...),
	}
}

func (c *quizServiceClient) ListLevels(ctx context.Context, req *connect.Request[ListLevelsRequest]) (*connect.Response[ListLevelsResponse], error) {
	return c.listLevels.CallUnary(ctx, req)
}

func (c *quizServiceClient) StartQuiz(ctx context.Context, req *connect.Request[StartQuizRequest]) (*connect.Response[QuizResponse], error) {
	return c.startQuiz.CallUnary(ctx, req)
}

func (c *quizServiceClient) SubmitAnswer(ctx context.Context, req *connect.Request[SubmitAnswerRequest]) (*connect.Response[QuizResponse], error) {
	return c.submitAnswer.CallUnary(ctx, req)
}

func (c *quizServiceClient) ShowNext(ctx context.Context, req *connect.Request[ShowNextRequest]) (*connect.Response[QuizResponse], error) {
	return c.showNext.CallUnary(ctx, req)
}

func (c *quizServiceClient) Restart(ctx context.Context, req *connect.Request[RestartRequest]) (*connect.Response[QuizResponse], error) {
	return c.restart.CallUnary(ctx, req)
}

func (c *quizServiceClient) GetQuiz(ctx context.Context, req *connect.Request[GetQuizRequest]) (*connect.Response[QuizResponse], error) {
	return c.getQuiz.CallUnary(ctx, req)
}
