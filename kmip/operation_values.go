package kmip

import "github.com/oy3o/ttlv"

// Operation values.
const (
	OperationCreate                    Operation = 0x00000001
	OperationCreateKeyPair             Operation = 0x00000002
	OperationRegister                  Operation = 0x00000003
	OperationReKey                     Operation = 0x00000004
	OperationDeriveKey                 Operation = 0x00000005
	OperationCertify                   Operation = 0x00000006
	OperationReCertify                 Operation = 0x00000007
	OperationLocate                    Operation = 0x00000008
	OperationCheck                     Operation = 0x00000009
	OperationGet                       Operation = 0x0000000A
	OperationGetAttributes             Operation = 0x0000000B
	OperationGetAttributeList          Operation = 0x0000000C
	OperationAddAttribute              Operation = 0x0000000D
	OperationModifyAttribute           Operation = 0x0000000E
	OperationDeleteAttribute           Operation = 0x0000000F
	OperationObtainLease               Operation = 0x00000010
	OperationGetUsageAllocation        Operation = 0x00000011
	OperationActivate                  Operation = 0x00000012
	OperationRevoke                    Operation = 0x00000013
	OperationDestroy                   Operation = 0x00000014
	OperationArchive                   Operation = 0x00000015
	OperationRecover                   Operation = 0x00000016
	OperationValidate                  Operation = 0x00000017
	OperationQuery                     Operation = 0x00000018
	OperationCancel                    Operation = 0x00000019
	OperationPoll                      Operation = 0x0000001A
	OperationNotify                    Operation = 0x0000001B
	OperationPut                       Operation = 0x0000001C
	OperationReKeyKeyPair              Operation = 0x0000001D
	OperationDiscoverVersions          Operation = 0x0000001E
	OperationEncrypt                   Operation = 0x0000001F
	OperationDecrypt                   Operation = 0x00000020
	OperationSign                      Operation = 0x00000021
	OperationSignatureVerify           Operation = 0x00000022
	OperationMac                       Operation = 0x00000023
	OperationMacVerify                 Operation = 0x00000024
	OperationRngRetrieve               Operation = 0x00000025
	OperationRngSeed                   Operation = 0x00000026
	OperationHash                      Operation = 0x00000027
	OperationCreateSplitKey            Operation = 0x00000028
	OperationJoinSplitKey              Operation = 0x00000029
	OperationImport                    Operation = 0x0000002A
	OperationExport                    Operation = 0x0000002B
	OperationLog                       Operation = 0x0000002C
	OperationLogin                     Operation = 0x0000002D
	OperationLogout                    Operation = 0x0000002E
	OperationDelegatedLogin            Operation = 0x0000002F
	OperationAdjustAttribute           Operation = 0x00000030
	OperationSetAttribute              Operation = 0x00000031
	OperationSetEndpointRole           Operation = 0x00000032
	OperationPkcs11                    Operation = 0x00000033
	OperationInterop                   Operation = 0x00000034
	OperationReProvision               Operation = 0x00000035
	OperationSetDefaults               Operation = 0x00000036
	OperationSetConstraints            Operation = 0x00000037
	OperationGetConstraints            Operation = 0x00000038
	OperationQueryAsynchronousRequests Operation = 0x00000039
	OperationProcess                   Operation = 0x0000003A
	OperationPing                      Operation = 0x0000003B
	OperationCreateGroup               Operation = 0x0000003C
	OperationObliterate                Operation = 0x0000003D
	OperationCreateUser                Operation = 0x0000003E
	OperationCreateCredential          Operation = 0x0000003F
	OperationDeactivate                Operation = 0x00000040
)

// Operations holds the Operation values and any registered extensions.
var Operations = newEnum("Operation",
	EnumValue{uint32(OperationCreate), "Create", allSpecs, false},
	EnumValue{uint32(OperationCreateKeyPair), "CreateKeyPair", allSpecs, false},
	EnumValue{uint32(OperationRegister), "Register", allSpecs, false},
	EnumValue{uint32(OperationReKey), "ReKey", allSpecs, false},
	EnumValue{uint32(OperationDeriveKey), "DeriveKey", allSpecs, false},
	EnumValue{uint32(OperationCertify), "Certify", allSpecs, false},
	EnumValue{uint32(OperationReCertify), "ReCertify", allSpecs, false},
	EnumValue{uint32(OperationLocate), "Locate", allSpecs, false},
	EnumValue{uint32(OperationCheck), "Check", allSpecs, false},
	EnumValue{uint32(OperationGet), "Get", allSpecs, false},
	EnumValue{uint32(OperationGetAttributes), "GetAttributes", allSpecs, false},
	EnumValue{uint32(OperationGetAttributeList), "GetAttributeList", allSpecs, false},
	EnumValue{uint32(OperationAddAttribute), "AddAttribute", allSpecs, false},
	EnumValue{uint32(OperationModifyAttribute), "ModifyAttribute", allSpecs, false},
	EnumValue{uint32(OperationDeleteAttribute), "DeleteAttribute", allSpecs, false},
	EnumValue{uint32(OperationObtainLease), "ObtainLease", allSpecs, false},
	EnumValue{uint32(OperationGetUsageAllocation), "GetUsageAllocation", allSpecs, false},
	EnumValue{uint32(OperationActivate), "Activate", allSpecs, false},
	EnumValue{uint32(OperationRevoke), "Revoke", allSpecs, false},
	EnumValue{uint32(OperationDestroy), "Destroy", allSpecs, false},
	EnumValue{uint32(OperationArchive), "Archive", allSpecs, false},
	EnumValue{uint32(OperationRecover), "Recover", allSpecs, false},
	EnumValue{uint32(OperationValidate), "Validate", allSpecs, false},
	EnumValue{uint32(OperationQuery), "Query", allSpecs, false},
	EnumValue{uint32(OperationCancel), "Cancel", allSpecs, false},
	EnumValue{uint32(OperationPoll), "Poll", allSpecs, false},
	EnumValue{uint32(OperationNotify), "Notify", allSpecs, false},
	EnumValue{uint32(OperationPut), "Put", allSpecs, false},
	EnumValue{uint32(OperationReKeyKeyPair), "ReKeyKeyPair", allSpecs, false},
	EnumValue{uint32(OperationDiscoverVersions), "DiscoverVersions", allSpecs, false},
	EnumValue{uint32(OperationEncrypt), "Encrypt", allSpecs, false},
	EnumValue{uint32(OperationDecrypt), "Decrypt", allSpecs, false},
	EnumValue{uint32(OperationSign), "Sign", allSpecs, false},
	EnumValue{uint32(OperationSignatureVerify), "SignatureVerify", allSpecs, false},
	EnumValue{uint32(OperationMac), "Mac", allSpecs, false},
	EnumValue{uint32(OperationMacVerify), "MacVerify", allSpecs, false},
	EnumValue{uint32(OperationRngRetrieve), "RngRetrieve", allSpecs, false},
	EnumValue{uint32(OperationRngSeed), "RngSeed", allSpecs, false},
	EnumValue{uint32(OperationHash), "Hash", allSpecs, false},
	EnumValue{uint32(OperationCreateSplitKey), "CreateSplitKey", allSpecs, false},
	EnumValue{uint32(OperationJoinSplitKey), "JoinSplitKey", allSpecs, false},
	EnumValue{uint32(OperationImport), "Import", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationExport), "Export", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationLog), "Log", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationLogin), "Login", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationLogout), "Logout", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationDelegatedLogin), "DelegatedLogin", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationAdjustAttribute), "AdjustAttribute", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationSetAttribute), "SetAttribute", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationSetEndpointRole), "SetEndpointRole", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationPkcs11), "Pkcs11", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationInterop), "Interop", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationReProvision), "ReProvision", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationSetDefaults), "SetDefaults", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationSetConstraints), "SetConstraints", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationGetConstraints), "GetConstraints", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationQueryAsynchronousRequests), "QueryAsynchronousRequests", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationProcess), "Process", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationPing), "Ping", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V2_1, ttlv.V3_0), false},
	EnumValue{uint32(OperationCreateGroup), "CreateGroup", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V3_0), false},
	EnumValue{uint32(OperationObliterate), "Obliterate", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V3_0), false},
	EnumValue{uint32(OperationCreateUser), "CreateUser", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V3_0), false},
	EnumValue{uint32(OperationCreateCredential), "CreateCredential", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V3_0), false},
	EnumValue{uint32(OperationDeactivate), "Deactivate", ttlv.NewSpecSet(ttlv.UnknownVersion, ttlv.V3_0), false},
)
