// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/bitmark-inc/assetregistry/messagebus"
	"github.com/bitmark-inc/logger"
)

// EventLog - background process writing queued events to the log
type EventLog struct {
	log   *logger.L
	queue *messagebus.Queue
	count uint64
}

// NewEventLog - drain queue into the "events" log channel
func NewEventLog(queue *messagebus.Queue) *EventLog {
	return &EventLog{
		log:   logger.New("events"),
		queue: queue,
	}
}

// Run - background process loop
//
// on shutdown anything already queued is still logged
func (e *EventLog) Run(args interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")
	queue := e.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			e.write(item)
		}
	}

drain:
	for {
		select {
		case item := <-queue:
			e.write(item)
		default:
			break drain
		}
	}

	e.log.Infof("stopped after: %d events", e.count)
	e.log.Flush()
}

// Count - events written so far
//
// only valid after Run returns
func (e *EventLog) Count() uint64 {
	return e.count
}

func (e *EventLog) write(item messagebus.Message) {
	e.count += 1
	buffer, err := json.Marshal(item.Parameters)
	if nil != err {
		e.log.Errorf("%s: marshal error: %s", item.Command, err)
		return
	}
	e.log.Infof("%s: %s", item.Command, buffer)
}
