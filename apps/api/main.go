package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/educircle/backend/apps/api/echo"
	"github.com/educircle/backend/core"
	"github.com/educircle/backend/core/assignment"
	"github.com/educircle/backend/core/review"
	"github.com/educircle/backend/core/stats"
	"github.com/educircle/backend/core/submission"
	emailsvc "github.com/educircle/backend/services/email"
	identitysvc "github.com/educircle/backend/services/identity"
	logsvc "github.com/educircle/backend/services/logger"
	"github.com/educircle/backend/storage/mongodb"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	client, err := mongodb.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = mongodb.Close(client); err != nil {
			logger.Error("failed to close database client", err)
		}
	}()
	db := client.Database(conf.Database.Name)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	verifier, err := identitysvc.NewGoogleService(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up identity verifier: %v", err), err)
	}

	assignmentRepo := mongodb.NewAssignmentRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	assignmentSvc := assignment.NewService(assignmentRepo)
	submissionSvc := submission.NewService(submissionRepo, mailSvc)
	reviewSvc := review.NewService(reviewRepo)
	statsSvc := stats.NewService(assignmentRepo, submissionRepo)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		Verifier:      verifier,
		AssignmentSvc: assignmentSvc,
		SubmissionSvc: submissionSvc,
		ReviewSvc:     reviewSvc,
		StatsSvc:      statsSvc,
	})
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
