// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/assetregistry/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a queued item
type Message struct {
	Command    string        // type of item
	Parameters []interface{} // parameters for the item
}

// Queue - a single bounded queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// BusType - all of the queues
type BusType struct {
	Events    *Queue // registry events
	TestQueue *Queue // for testing use
}

// Bus - global message bus
var Bus = BusType{
	Events:    NewQueue(queueSize),
	TestQueue: NewQueue(queueSize),
}

// NewQueue - create a queue holding at most size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
//
// never blocks, a full queue drops the message and returns false
func (queue *Queue) Send(command string, parameters ...interface{}) bool {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		queue.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded since start
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
