// Package jobs runs the shop's periodic background work on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - starts the delivery of the oldest order whose shipment is Ready
// 2. DeliveryCompletionJob - completes every delivery that is InProgress
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatchHandler, completionHandler, jobs.Schedules{
//		Dispatch:   "*/5 * * * * *",
//		Completion: "*/10 * * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use six fields, the first one being seconds.
//
// # Error Handling
//
// The dispatch job ignores ErrNoOrderReadyForDelivery. Every other handler
// error is logged and the job keeps running. A job that fails to start stops
// the jobs already started.
package jobs
