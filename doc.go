// Package wfemutex provides portable user-space synchronization primitives
// built on hardware monitor/wait instructions - ARM WFE/WFET, AMD
// MONITORX/MWAITX, Intel UMONITOR/UMWAIT - with a spin-based fallback on
// every other target. It exposes two families of operations:
//
//   - The WaitFor* generic functions, which block a goroutine's underlying
//     OS thread until a word in memory satisfies a condition, without the
//     busy-polling a plain spin loop would otherwise require.
//   - Mutex and RWMutex, built on top of WaitFor*, as drop-in-shaped
//     alternatives to sync.Mutex/sync.RWMutex for the specific case of very
//     short critical sections where a syscall-backed futex wait is overkill
//     but pure spinning burns too much power.
//
// Call Init once, early (main, or an init func), before using any of the
// above; GetFeatures reports what it found.
package wfemutex
