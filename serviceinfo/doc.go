// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package serviceinfo defines the types a device service info module
exchanges with the protocol orchestrator during the TO2 message 68/69
phase.

Service info is a list of key value pairs where the key is a string of
the form "moduleName:messageName" and the value is CBOR-encoded data.
This package covers only the device side of the exchange for modules
that produce Device ServiceInfo (DSI): the key/value pair type, the
round signal reported to the orchestrator, the closed result set, and
the message kinds a module may have pending.

The orchestrator owns the transport, the cryptographic session, and the
negotiated MTU. Modules see the MTU only as a per-call byte budget.
*/
package serviceinfo
