// This file is part of DGVita.
//
// DGVita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DGVita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DGVita.  If not, see <https://www.gnu.org/licenses/>.

//go:build doomgeneric && cgo

package doomgeneric

/*
#cgo LDFLAGS: -ldoomgeneric -lm
#include <stdint.h>
#include <stdlib.h>

#ifndef DOOMGENERIC_RESX
#define DOOMGENERIC_RESX 640
#endif
#ifndef DOOMGENERIC_RESY
#define DOOMGENERIC_RESY 400
#endif

extern uint32_t *DG_ScreenBuffer;
void doomgeneric_Create(int argc, char **argv);
void doomgeneric_Tick(void);
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/jetsetilly/dgvita/curated"
	"github.com/jetsetilly/dgvita/engine"
)

// Sentinel error patterns.
const (
	AlreadyCreated = "doomgeneric: engine has already been created"
	NotCreated     = "doomgeneric: engine has not been created"
)

// the C engine calls the exported DG_* functions, which forward to the
// callbacks given to Create()
var active struct {
	crit sync.Mutex
	cb   engine.Callbacks
}

func callbacks() engine.Callbacks {
	active.crit.Lock()
	defer active.crit.Unlock()
	return active.cb
}

// Doomgeneric implements the engine.Engine interface.
type Doomgeneric struct {
	created bool
}

// NewDoomgeneric is the preferred method of initialisation for the
// Doomgeneric type.
func NewDoomgeneric() *Doomgeneric {
	return &Doomgeneric{}
}

// Create implements the engine.Engine interface.
func (dg *Doomgeneric) Create(args []string, cb engine.Callbacks) error {
	active.crit.Lock()
	if active.cb != nil {
		active.crit.Unlock()
		return curated.Errorf(AlreadyCreated)
	}
	active.cb = cb
	active.crit.Unlock()

	// the engine keeps a reference to argv for the life of the process so
	// the memory is never freed
	argv := (**C.char)(C.malloc(C.size_t(len(args)+1) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	av := unsafe.Slice(argv, len(args)+1)
	for i, a := range args {
		av[i] = C.CString(a)
	}
	av[len(args)] = nil

	C.doomgeneric_Create(C.int(len(args)), argv)
	dg.created = true

	return nil
}

// Tick implements the engine.Engine interface.
func (dg *Doomgeneric) Tick() error {
	if !dg.created {
		return curated.Errorf(NotCreated)
	}
	C.doomgeneric_Tick()
	return nil
}

// ScreenBuffer implements the engine.Engine interface.
func (dg *Doomgeneric) ScreenBuffer() []uint32 {
	if C.DG_ScreenBuffer == nil {
		return nil
	}
	w, h := dg.Resolution()
	return unsafe.Slice((*uint32)(unsafe.Pointer(C.DG_ScreenBuffer)), w*h)
}

// Resolution implements the engine.Engine interface.
func (dg *Doomgeneric) Resolution() (int, int) {
	return int(C.DOOMGENERIC_RESX), int(C.DOOMGENERIC_RESY)
}

//export DG_Init
func DG_Init() {
	callbacks().Init()
}

//export DG_DrawFrame
func DG_DrawFrame() {
	callbacks().DrawFrame()
}

//export DG_SleepMs
func DG_SleepMs(ms C.uint32_t) {
	callbacks().SleepMs(uint32(ms))
}

//export DG_GetTicksMs
func DG_GetTicksMs() C.uint32_t {
	return C.uint32_t(callbacks().GetTicksMs())
}

//export DG_GetKey
func DG_GetKey(pressed *C.int, key *C.uchar) C.int {
	p, k, ok := callbacks().GetKey()
	if !ok {
		return 0
	}
	*key = C.uchar(k)
	if p {
		*pressed = 1
	} else {
		*pressed = 0
	}
	return 1
}

//export DG_SetWindowTitle
func DG_SetWindowTitle(title *C.char) {
	callbacks().SetWindowTitle(C.GoString(title))
}
